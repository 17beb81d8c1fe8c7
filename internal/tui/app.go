// Package tui is the terminal frontend: a bubbletea program that
// drives the simulation from keyboard input and strokes the curve
// onto a braille canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
	"github.com/san-kum/ropesim/internal/sim"
	"github.com/san-kum/ropesim/internal/viz"
)

const (
	pointerStep    = 20.0
	pointerStepBig = 80.0
)

var tangentTs = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

var paramOrder = []string{"stiffness", "damping", "tangent"}

var paramSteps = map[string]float64{
	"stiffness": 5,
	"damping":   0.5,
	"tangent":   5,
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	world  *sim.World
	worldW float64
	worldH float64

	cursor geom.Point // where the keyboard pointer wants to be

	// The drawn crosshair eases toward the live pointer instead of
	// jumping with each keypress.
	spring           harmonica.Spring
	crossX, crossY   float64
	crossVX, crossVY float64

	paramSel int
	start    time.Time
	frame    sim.Frame

	width  int
	height int
}

func NewApp(cfg *config.Config) *model {
	w, h := float64(cfg.Width), float64(cfg.Height)
	world := sim.New(sim.Params{
		Stiffness:     cfg.Stiffness,
		Damping:       cfg.Damping,
		TangentLength: cfg.TangentLength,
	}, w, h)

	cursor := world.Pointer()
	return &model{
		world:  world,
		worldW: w,
		worldH: h,
		cursor: cursor,
		spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.9),
		crossX: cursor.X,
		crossY: cursor.Y,
		start:  time.Now(),
		width:  80,
		height: 24,
	}
}

// Run blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := float64(time.Since(m.start)) / float64(time.Millisecond)
		m.frame = m.world.Advance(now)

		target := m.world.Pointer()
		m.crossX, m.crossVX = m.spring.Update(m.crossX, m.crossVX, target.X)
		m.crossY, m.crossVY = m.spring.Update(m.crossY, m.crossVY, target.Y)

		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := pointerStep
	switch msg.String() {
	case "q", "ctrl+c":
		m.world.Stop()
		return m, tea.Quit
	case "H", "J", "K", "L":
		step = pointerStepBig
	}

	switch strings.ToLower(msg.String()) {
	case "left", "h":
		m.movePointer(-step, 0)
	case "right", "l":
		m.movePointer(step, 0)
	case "up", "k":
		m.movePointer(0, -step)
	case "down", "j":
		m.movePointer(0, step)
	case " ", "enter":
		m.world.Click(m.cursor)
	case "tab":
		m.paramSel = (m.paramSel + 1) % len(paramOrder)
	case "+", "=":
		m.adjustParam(1)
	case "-", "_":
		m.adjustParam(-1)
	case "r":
		params := m.world.Params()
		m.world = sim.New(params, m.worldW, m.worldH)
		m.cursor = m.world.Pointer()
	}
	return m, nil
}

func (m *model) movePointer(dx, dy float64) {
	m.cursor = m.cursor.Add(geom.P(dx, dy))
	if m.cursor.X < 0 {
		m.cursor.X = 0
	}
	if m.cursor.Y < 0 {
		m.cursor.Y = 0
	}
	if m.cursor.X > m.worldW {
		m.cursor.X = m.worldW
	}
	if m.cursor.Y > m.worldH {
		m.cursor.Y = m.worldH
	}
	m.world.PointerMoved(m.cursor)
}

func (m *model) adjustParam(dir float64) {
	name := paramOrder[m.paramSel]
	val := m.world.GetParams()[name] + dir*paramSteps[name]
	m.world.SetParam(name, clampParam(name, val))
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

func (m *model) View() string {
	cw := m.width - 4
	ch := m.height - 7
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}

	canvas := viz.NewCanvas(cw, ch)
	project := func(p geom.Point) (int, int) {
		x := p.X / m.worldW * float64(canvas.PixelWidth()-1)
		y := p.Y / m.worldH * float64(canvas.PixelHeight()-1)
		return int(x), int(y)
	}

	f := m.frame
	canvas.DrawCubic(f.Curve, 96, project)
	m.drawTangents(canvas, project)

	for _, p := range []geom.Point{f.Curve.P0, f.Curve.P3} {
		x, y := project(p)
		canvas.DrawMarker(x, y, 1)
	}
	m.drawControlMarker(canvas, project, f.P1.Pos, f.Mode == input.ModeP1 || f.Mode == input.ModeAll)
	m.drawControlMarker(canvas, project, f.P2.Pos, f.Mode == input.ModeP2 || f.Mode == input.ModeAll)

	// crosshair at the eased pointer position
	cx, cy := project(geom.P(m.crossX, m.crossY))
	canvas.DrawLine(cx-3, cy, cx+3, cy)
	canvas.DrawLine(cx, cy-3, cx, cy+3)

	var b strings.Builder
	b.WriteString("\n  " + m.statusLine() + "\n")
	for _, row := range strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + m.paramLine() + "\n")
	b.WriteString(viz.Dim.Render("  arrows move  space click  tab param  +/- adjust  r reset  q quit") + "\n")
	return b.String()
}

func (m *model) drawTangents(canvas *viz.Canvas, project func(geom.Point) (int, int)) {
	length := m.world.Params().TangentLength
	for _, t := range tangentTs {
		tan, ok := m.frame.Curve.UnitTangent(t)
		if !ok {
			continue
		}
		base := m.frame.Curve.Eval(t).Add(tan.Perp().Scale(6))
		tip := base.Add(tan.Scale(length))
		x0, y0 := project(base)
		x1, y1 := project(tip)
		canvas.DrawLine(x0, y0, x1, y1)
	}
}

func (m *model) drawControlMarker(canvas *viz.Canvas, project func(geom.Point) (int, int), p geom.Point, active bool) {
	x, y := project(p)
	r := 1
	if active {
		r = 2
	}
	canvas.DrawMarker(x, y, r)
}

func (m *model) statusLine() string {
	mode := m.frame.Mode
	style := viz.ModeActiveStyle
	if mode == input.ModeLocked {
		style = viz.ModeLockedStyle
	}
	return viz.Cyan.Render("ropesim") + "  " +
		viz.Dim.Render("mode ") + style.Render(mode.String()) + "  " +
		viz.Dim.Render(fmt.Sprintf("t=%.1fs", m.frame.T))
}

func (m *model) paramLine() string {
	params := m.world.GetParams()
	var parts []string
	for i, name := range paramOrder {
		val := fmt.Sprintf("%s %.1f", name, params[name])
		if i == m.paramSel {
			parts = append(parts, viz.Cyan.Render("▸ ")+viz.White.Render(val))
		} else {
			parts = append(parts, "  "+viz.Dim.Render(val))
		}
	}
	return strings.Join(parts, "  ")
}
