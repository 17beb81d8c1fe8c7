package metrics

import "github.com/san-kum/ropesim/internal/sim"

// Settle reports the simulated time at which both control points came
// within tolerance of their targets and stayed there for the rest of
// the run. Value is -1 if they never settled.
type Settle struct {
	tolerance float64
	settledAt float64
	settled   bool
}

func NewSettle(tolerance float64) *Settle {
	return &Settle{tolerance: tolerance, settledAt: -1}
}

func (s *Settle) Name() string { return "settle_time" }

func (s *Settle) Observe(f sim.Frame) {
	d1 := f.P1.Pos.Sub(f.P1.Target).Norm()
	d2 := f.P2.Pos.Sub(f.P2.Target).Norm()

	if d1 <= s.tolerance && d2 <= s.tolerance {
		if !s.settled {
			s.settled = true
			s.settledAt = f.T
		}
		return
	}
	s.settled = false
	s.settledAt = -1
}

func (s *Settle) Value() float64 {
	if !s.settled {
		return -1
	}
	return s.settledAt
}

func (s *Settle) Reset() {
	s.settled = false
	s.settledAt = -1
}
