package metrics

import (
	"testing"

	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
)

func frameAt(t float64, d1, d2 float64) sim.Frame {
	p1 := rope.ControlPoint{Pos: geom.P(d1, 0), Target: geom.P(0, 0)}
	p2 := rope.ControlPoint{Pos: geom.P(d2, 0), Target: geom.P(0, 0)}
	return sim.Frame{P1: p1, P2: p2, T: t}
}

func TestSettle(t *testing.T) {
	s := NewSettle(1.0)

	s.Observe(frameAt(0.0, 50, 50))
	s.Observe(frameAt(0.1, 5, 0.5))
	s.Observe(frameAt(0.2, 0.5, 0.5))
	s.Observe(frameAt(0.3, 0.2, 0.1))

	if got := s.Value(); got != 0.2 {
		t.Errorf("settle time = %f, want 0.2", got)
	}
}

func TestSettleResetsOnExcursion(t *testing.T) {
	s := NewSettle(1.0)

	s.Observe(frameAt(0.0, 0.5, 0.5))
	s.Observe(frameAt(0.1, 5, 0.5)) // bounced back out
	s.Observe(frameAt(0.2, 0.5, 0.5))

	if got := s.Value(); got != 0.2 {
		t.Errorf("settle time = %f, want 0.2 after excursion", got)
	}
}

func TestSettleNever(t *testing.T) {
	s := NewSettle(1.0)
	s.Observe(frameAt(0.0, 50, 50))
	s.Observe(frameAt(0.1, 40, 40))

	if got := s.Value(); got != -1 {
		t.Errorf("unsettled value = %f, want -1", got)
	}
}

func TestOvershoot(t *testing.T) {
	o := NewOvershoot(1.0)

	o.Observe(frameAt(0.0, 50, 50)) // approaching, not yet reached
	o.Observe(frameAt(0.1, 0.5, 50))
	o.Observe(frameAt(0.2, 7, 50)) // p1 swung past
	o.Observe(frameAt(0.3, 3, 50))

	if got := o.Value(); got != 7 {
		t.Errorf("overshoot = %f, want 7", got)
	}
}

func TestOvershootZeroWhenMonotone(t *testing.T) {
	o := NewOvershoot(1.0)
	o.Observe(frameAt(0.0, 50, 50))
	o.Observe(frameAt(0.1, 10, 10))
	o.Observe(frameAt(0.2, 0.5, 0.5))

	if got := o.Value(); got != 0 {
		t.Errorf("overshoot = %f, want 0", got)
	}
}
