// Package rope implements the spring-damper dynamics that pull the
// curve's interior control points toward their targets, making the
// curve behave like an elastic rope rather than snapping to the
// pointer.
package rope

import "github.com/san-kum/ropesim/internal/geom"

const (
	DefaultStiffness = 50.0
	DefaultDamping   = 8.0
)

// ControlPoint is one interior Bézier control point under physics
// control. Pos and Vel are mutated only by Step; Target is assigned by
// the per-frame input rule (or by Reset).
type ControlPoint struct {
	Pos    geom.Point
	Vel    geom.Point
	Target geom.Point
}

// NewControlPoint places a control point at rest at p with its target
// on top of it, so it stays put until a target is assigned.
func NewControlPoint(p geom.Point) ControlPoint {
	return ControlPoint{Pos: p, Target: p}
}

// Step advances the point by dt seconds under a unit-mass spring-damper
// law. Semi-implicit Euler: the velocity is updated from the
// acceleration first, then the position from the new velocity. The
// update order must not change; position-first diverges at high
// stiffness.
//
// Callers must clamp dt; Step performs no substepping.
func (cp *ControlPoint) Step(dt, stiffness, damping float64) {
	disp := cp.Target.Sub(cp.Pos)
	acc := disp.Scale(stiffness).Sub(cp.Vel.Scale(damping))
	cp.Vel = cp.Vel.Add(acc.Scale(dt))
	cp.Pos = cp.Pos.Add(cp.Vel.Scale(dt))
}

// Energy returns the total mechanical energy of the point:
// kinetic plus spring potential relative to the target.
func (cp *ControlPoint) Energy(stiffness float64) float64 {
	v2 := cp.Vel.Dot(cp.Vel)
	d := cp.Target.Sub(cp.Pos)
	return 0.5*v2 + 0.5*stiffness*d.Dot(d)
}

// Reset moves the point to p at rest, target included. Used when a
// simulation is (re)initialized; resize does not call this, so motion
// carries across surface changes.
func (cp *ControlPoint) Reset(p geom.Point) {
	cp.Pos = p
	cp.Vel = geom.Point{}
	cp.Target = p
}
