package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/export"
	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/gui"
	"github.com/san-kum/ropesim/internal/metrics"
	"github.com/san-kum/ropesim/internal/sim"
	"github.com/san-kum/ropesim/internal/storage"
	"github.com/san-kum/ropesim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	stiffness float64
	damping   float64
	tangent   float64
	width     int
	height    int
	frameRate int

	// run / snapshot
	seconds float64
	px, py  float64
	orbit   bool
	noSave  bool
	outFile string
)

// main registers the CLI commands and flags. With no subcommand the
// interactive GUI is launched.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ropesim",
		Short: "elastic bezier rope simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".ropesim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "spring stiffness")
	pf.Float64Var(&damping, "damping", config.DefaultDamping, "spring damping")
	pf.Float64Var(&tangent, "tangent", config.DefaultTangentLength, "tangent tick length")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height")
	pf.IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run with the windowed frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run with the terminal frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with settle metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&seconds, "time", 10.0, "simulated duration")
	runCmd.Flags().Float64Var(&px, "px", 0, "pointer x (default: surface center)")
	runCmd.Flags().Float64Var(&py, "py", 0, "pointer y (default: surface center)")
	runCmd.Flags().BoolVar(&orbit, "orbit", false, "move the pointer on a circle instead of holding it")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving run artifacts")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot control point convergence for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "export a settled curve as SVG",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVar(&outFile, "out", "ropesim.svg", "output file")
	snapshotCmd.Flags().Float64Var(&seconds, "time", 5.0, "simulated settle time")
	snapshotCmd.Flags().Float64Var(&px, "px", 0, "pointer x (default: surface center)")
	snapshotCmd.Flags().Float64Var(&py, "py", 0, "pointer y (default: surface center)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTIFFNESS\tDAMPING\tTANGENT")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.1f\n", name, cfg.Stiffness, cfg.Damping, cfg.TangentLength)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, config file, preset and explicit
// flags, in that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Stiffness = p.Stiffness
		cfg.Damping = p.Damping
		cfg.TangentLength = p.TangentLength
	}

	flags := cmd.Flags()
	if flags.Changed("stiffness") {
		cfg.Stiffness = stiffness
	}
	if flags.Changed("damping") {
		cfg.Damping = damping
	}
	if flags.Changed("tangent") {
		cfg.TangentLength = tangent
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	return cfg, nil
}

func buildWorld(cfg *config.Config) (*sim.World, geom.Point) {
	world := sim.New(sim.Params{
		Stiffness:     cfg.Stiffness,
		Damping:       cfg.Damping,
		TangentLength: cfg.TangentLength,
	}, float64(cfg.Width), float64(cfg.Height))

	pointer := geom.P(px, py)
	if px == 0 && py == 0 {
		pointer = geom.P(float64(cfg.Width)/2, float64(cfg.Height)/2)
	}
	world.PointerMoved(pointer)
	return world, pointer
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	world, center := buildWorld(cfg)
	runner := sim.NewRunner(world)
	runner.AddMetric(metrics.NewSettle(1.0))
	runner.AddMetric(metrics.NewOvershoot(1.0))

	var cb func(sim.Frame) bool
	if orbit {
		cb = func(f sim.Frame) bool {
			// one revolution every four seconds, radius 150
			ang := f.T * 2 * math.Pi / 4
			world.PointerMoved(center.Add(geom.P(math.Cos(ang), math.Sin(ang)).Scale(150)))
			return true
		}
	}

	steps := int(seconds * float64(cfg.FrameRate))
	result, err := runner.Run(cmd.Context(), steps, 1000/float64(cfg.FrameRate), cb)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", result.Steps)
	fmt.Fprintf(w, "sim time\t%.2fs\n", result.Times[len(result.Times)-1])
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.3f\n", name, val)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if noSave {
		return nil
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(world.Params(), cfg.FrameRate, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTIFFNESS\tDAMPING\tSTEPS\tSETTLE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%d\t%.2f\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stiffness, run.Damping, run.Steps, run.Metrics["settle_time"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	states, times, err := store.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("run has no recorded states: %s", args[0])
	}

	// distance-to-target columns per sim.StateHeader
	const p1dist, p2dist = 4, 9

	d1 := make([]float64, len(states))
	d2 := make([]float64, len(states))
	for i, s := range states {
		d1[i] = s[p1dist]
		d2[i] = s[p2dist]
	}

	fmt.Printf("run %s  %.2fs\n\n", args[0], times[len(times)-1])
	fmt.Println(asciigraph.Plot(d1, asciigraph.Height(12), asciigraph.Caption("p1 distance to target")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(d2, asciigraph.Height(12), asciigraph.Caption("p2 distance to target")))
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	world, _ := buildWorld(cfg)

	steps := int(seconds * float64(cfg.FrameRate))
	frameMs := 1000 / float64(cfg.FrameRate)
	var frame sim.Frame
	for i := 0; i < steps; i++ {
		frame = world.Advance(float64(i) * frameMs)
	}

	svg := export.FrameToSVG(frame, cfg.TangentLength, cfg.Width, cfg.Height)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
