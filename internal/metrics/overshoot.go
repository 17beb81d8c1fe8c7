package metrics

import "github.com/san-kum/ropesim/internal/sim"

// Overshoot measures how far past their targets the control points
// swing: the maximum distance to target observed after a point first
// comes within tolerance. Zero for critically damped or overdamped
// motion.
type Overshoot struct {
	tolerance float64
	reached1  bool
	reached2  bool
	max       float64
}

func NewOvershoot(tolerance float64) *Overshoot {
	return &Overshoot{tolerance: tolerance}
}

func (o *Overshoot) Name() string { return "max_overshoot" }

func (o *Overshoot) Observe(f sim.Frame) {
	d1 := f.P1.Pos.Sub(f.P1.Target).Norm()
	d2 := f.P2.Pos.Sub(f.P2.Target).Norm()

	if d1 <= o.tolerance {
		o.reached1 = true
	} else if o.reached1 && d1 > o.max {
		o.max = d1
	}

	if d2 <= o.tolerance {
		o.reached2 = true
	} else if o.reached2 && d2 > o.max {
		o.max = d2
	}
}

func (o *Overshoot) Value() float64 { return o.max }

func (o *Overshoot) Reset() {
	o.reached1 = false
	o.reached2 = false
	o.max = 0
}
