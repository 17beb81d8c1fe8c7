package sim

import (
	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
	"github.com/san-kum/ropesim/internal/rope"
)

// Params are the live-tunable simulation parameters. They are read by
// the integrator and the renderers every frame and may be changed at
// any time between frames.
type Params struct {
	Stiffness     float64
	Damping       float64
	TangentLength float64
}

func DefaultParams() Params {
	return Params{
		Stiffness:     rope.DefaultStiffness,
		Damping:       rope.DefaultDamping,
		TangentLength: 50,
	}
}

// Frame is the per-tick snapshot handed to renderers, observers and
// metrics. Control points are copied by value; mutating a Frame does
// not touch the World.
type Frame struct {
	Curve geom.Cubic
	Mode  input.Mode
	P1    rope.ControlPoint
	P2    rope.ControlPoint
	T     float64 // simulated seconds since start
	Dt    float64 // clamped timestep applied this frame
}

// Observer is notified once per frame.
type Observer interface {
	OnFrame(f Frame)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Result collects the output of a headless run in a storable form.
type Result struct {
	Times   []float64
	States  [][]float64
	Metrics map[string]float64
	Steps   int
}

// StateHeader names the columns of Result.States.
func StateHeader() []string {
	return []string{
		"p1x", "p1y", "p1vx", "p1vy", "p1dist",
		"p2x", "p2y", "p2vx", "p2vy", "p2dist",
	}
}

func stateRow(f Frame) []float64 {
	return []float64{
		f.P1.Pos.X, f.P1.Pos.Y, f.P1.Vel.X, f.P1.Vel.Y, f.P1.Pos.Sub(f.P1.Target).Norm(),
		f.P2.Pos.X, f.P2.Pos.Y, f.P2.Vel.X, f.P2.Vel.Y, f.P2.Pos.Sub(f.P2.Target).Norm(),
	}
}
