// Package gui is the windowed frontend: raylib supplies the frame
// loop, mouse input and drawing surface; all simulation state lives in
// the sim.World.
package gui

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/sim"
)

// Theme colors (monochrome)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColCurve   = rl.NewColor(180, 180, 180, 255)
	ColTangent = rl.NewColor(90, 90, 90, 255)
	ColMarker  = rl.NewColor(140, 140, 140, 255)
	ColActive  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	World        *sim.World
	ParamKeys    []string
	ParamSel     int
	ShowTangents bool
	frame        sim.Frame
}

func NewApp(cfg *config.Config) *App {
	world := sim.New(sim.Params{
		Stiffness:     cfg.Stiffness,
		Damping:       cfg.Damping,
		TangentLength: cfg.TangentLength,
	}, float64(cfg.Width), float64(cfg.Height))

	keys := make([]string, 0, 3)
	for k := range world.GetParams() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &App{
		World:        world,
		ParamKeys:    keys,
		ShowTangents: true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "ropesim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(0)

	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.World.Stopped() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.World.Stop()
		return
	}

	if rl.IsWindowResized() {
		a.World.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	mouse := rl.GetMousePosition()
	pointer := geom.P(float64(mouse.X), float64(mouse.Y))
	a.World.PointerMoved(pointer) // suppressed by the world while locked

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.World.Click(pointer)
	}

	a.handleParamKeys()

	if rl.IsKeyPressed(rl.KeyT) {
		a.ShowTangents = !a.ShowTangents
	}

	a.frame = a.World.Advance(rl.GetTime() * 1000)
}

func (a *App) handleParamKeys() {
	if len(a.ParamKeys) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = (a.ParamSel + 1) % len(a.ParamKeys)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel--
		if a.ParamSel < 0 {
			a.ParamSel = len(a.ParamKeys) - 1
		}
	}

	key := a.ParamKeys[a.ParamSel]
	step := 1.0
	if rl.IsKeyDown(rl.KeyLeftShift) {
		step = 10.0
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.World.SetParam(key, clampParam(key, a.World.GetParams()[key]+step))
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.World.SetParam(key, clampParam(key, a.World.GetParams()[key]-step))
	}
}

// stiffness must stay positive; damping and tangent length floor at 0.
func clampParam(name string, val float64) float64 {
	min := 0.0
	if name == "stiffness" {
		min = 1.0
	}
	if val < min {
		return min
	}
	return val
}
