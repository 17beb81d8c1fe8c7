package sim

import (
	"fmt"

	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
	"github.com/san-kum/ropesim/internal/rope"
)

// MaxDt bounds the per-frame timestep in seconds. Elapsed wall time
// beyond this (tab stalls, debugger pauses, dropped frames) is clamped
// so the integrator stays inside its stability envelope.
const MaxDt = 1.0 / 30

// Target offsets keeping the two control points visually separated
// around the pointer.
const (
	targetOffsetX = 100.0
	targetOffsetY = 50.0
)

// World is the simulation context: one curve, two spring-driven
// control points, and the input state that steers them. All methods
// must be called from a single goroutine.
type World struct {
	params  Params
	p1, p2  rope.ControlPoint
	start   geom.Point // fixed endpoint P0, owned by resize
	end     geom.Point // fixed endpoint P3, owned by resize
	pointer geom.Point
	mode    input.Mode

	lastMs  float64
	started bool
	stopped bool
	elapsed float64
}

// New lays out a world for a surface of the given size: endpoints at
// 15% and 85% of the width on the vertical midline, control points at
// rest on the thirds of the chord.
func New(p Params, width, height float64) *World {
	w := &World{params: p}
	w.layout(width, height)

	chord := w.end.Sub(w.start)
	w.p1 = rope.NewControlPoint(w.start.Add(chord.Scale(1.0 / 3)))
	w.p2 = rope.NewControlPoint(w.start.Add(chord.Scale(2.0 / 3)))
	w.pointer = w.start.Add(chord.Scale(0.5))
	return w
}

func (w *World) layout(width, height float64) {
	w.start = geom.P(width*0.15, height/2)
	w.end = geom.P(width*0.85, height/2)
}

// Resize recomputes the fixed endpoints for a new surface size. The
// control points keep their position, velocity and target so motion
// continues smoothly across the resize.
func (w *World) Resize(width, height float64) {
	w.layout(width, height)
}

// PointerMoved records a new pointer position. Ignored while locked,
// freezing the pointer at its last pre-lock value.
func (w *World) PointerMoved(p geom.Point) {
	if w.mode == input.ModeLocked {
		return
	}
	w.pointer = p
}

func (w *World) Pointer() geom.Point { return w.pointer }

// Click runs the mode transition for a click at c.
func (w *World) Click(c geom.Point) {
	w.mode = input.Next(w.mode, c, w.p1.Pos, w.p2.Pos)
}

func (w *World) Mode() input.Mode { return w.mode }

func (w *World) P1() rope.ControlPoint { return w.p1 }
func (w *World) P2() rope.ControlPoint { return w.p2 }

// Curve returns the current curve definition: fixed endpoints plus the
// live control point positions.
func (w *World) Curve() geom.Cubic {
	return geom.Cubic{P0: w.start, P1: w.p1.Pos, P2: w.p2.Pos, P3: w.end}
}

func (w *World) Params() Params     { return w.params }
func (w *World) SetParams(p Params) { w.params = p }

// GetParams exposes the tunables by name for generic parameter
// editing in the frontends.
func (w *World) GetParams() map[string]float64 {
	return map[string]float64{
		"stiffness": w.params.Stiffness,
		"damping":   w.params.Damping,
		"tangent":   w.params.TangentLength,
	}
}

func (w *World) SetParam(name string, value float64) error {
	switch name {
	case "stiffness":
		w.params.Stiffness = value
	case "damping":
		w.params.Damping = value
	case "tangent":
		w.params.TangentLength = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Stop prevents Advance from progressing the simulation further.
func (w *World) Stop()         { w.stopped = true }
func (w *World) Stopped() bool { return w.stopped }

// Advance runs one frame at the given monotonic timestamp in
// milliseconds: assign targets per the current mode, integrate both
// control points with the clamped timestep, and return the frame
// snapshot for rendering. The first call establishes the clock and
// integrates with dt = 0.
func (w *World) Advance(nowMs float64) Frame {
	dt := 0.0
	if w.started && !w.stopped {
		dt = (nowMs - w.lastMs) / 1000
		if dt < 0 {
			dt = 0
		}
		if dt > MaxDt {
			dt = MaxDt
		}
	}
	w.lastMs = nowMs
	w.started = true

	if !w.stopped {
		off := geom.P(targetOffsetX, targetOffsetY)
		switch w.mode {
		case input.ModeAll:
			w.p1.Target = w.pointer.Sub(off)
			w.p2.Target = w.pointer.Add(off)
		case input.ModeP1:
			w.p1.Target = w.pointer.Sub(off)
		case input.ModeP2:
			w.p2.Target = w.pointer.Add(off)
		case input.ModeLocked:
			// points keep settling toward their last targets
		}

		w.p1.Step(dt, w.params.Stiffness, w.params.Damping)
		w.p2.Step(dt, w.params.Stiffness, w.params.Damping)
		w.elapsed += dt
	}

	return Frame{
		Curve: w.Curve(),
		Mode:  w.mode,
		P1:    w.p1,
		P2:    w.p2,
		T:     w.elapsed,
		Dt:    dt,
	}
}
