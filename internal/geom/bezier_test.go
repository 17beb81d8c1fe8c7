package geom

import (
	"math"
	"testing"
)

func TestCubicEndpoints(t *testing.T) {
	c := Cubic{
		P0: P(-3, 7),
		P1: P(120, -40),
		P2: P(9.5, 220),
		P3: P(640, 360),
	}

	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
}

func TestCubicMidpoint(t *testing.T) {
	c := Cubic{P0: P(0, 0), P1: P(0, 8), P2: P(8, 8), P3: P(8, 0)}

	// At t=0.5 the Bernstein weights are 1/8, 3/8, 3/8, 1/8.
	got := c.Eval(0.5)
	want := P(4, 6)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("Eval(0.5) = %v, want %v", got, want)
	}
}

func TestCubicConvexHullBound(t *testing.T) {
	c := Cubic{P0: P(10, 10), P1: P(50, 200), P2: P(300, -40), P3: P(400, 100)}

	minX, maxX := 10.0, 400.0
	minY, maxY := -40.0, 200.0

	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		p := c.Eval(tt)
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			t.Errorf("Eval(%.2f) = %v escapes the control point bounding box", tt, p)
		}
	}
}

func TestCubicTangentDirection(t *testing.T) {
	c := Cubic{P0: P(0, 0), P1: P(0, 0), P2: P(1, 0), P3: P(1, 0)}

	d := c.Deriv(0.5)
	if d.X <= 0 {
		t.Errorf("tangent x should be positive, got %f", d.X)
	}
	if d.Y != 0 {
		t.Errorf("tangent y should be 0, got %f", d.Y)
	}
	if d.Norm() == 0 {
		t.Error("tangent should have nonzero magnitude")
	}
}

func TestCubicTangentMatchesDifferenceQuotient(t *testing.T) {
	c := Cubic{P0: P(0, 0), P1: P(100, 50), P2: P(200, -50), P3: P(300, 0)}

	const h = 1e-6
	for _, tt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		want := c.Eval(tt + h).Sub(c.Eval(tt - h)).Scale(1 / (2 * h))
		got := c.Deriv(tt)
		if math.Abs(got.X-want.X) > 1e-3 || math.Abs(got.Y-want.Y) > 1e-3 {
			t.Errorf("t=%.1f: Deriv = %v, numeric = %v", tt, got, want)
		}
	}
}

func TestUnitTangentDegenerate(t *testing.T) {
	p := P(5, 5)
	c := Cubic{P0: p, P1: p, P2: p, P3: p}

	if _, ok := c.UnitTangent(0.5); ok {
		t.Error("coincident control points should report a degenerate tangent")
	}

	c = Cubic{P0: P(0, 0), P1: P(1, 1), P2: P(2, 2), P3: P(3, 3)}
	tan, ok := c.UnitTangent(0.5)
	if !ok {
		t.Fatal("colinear but distinct points should still have a tangent")
	}
	if math.Abs(tan.Norm()-1) > 1e-12 {
		t.Errorf("unit tangent norm = %f, want 1", tan.Norm())
	}
}

func TestSamples(t *testing.T) {
	c := Cubic{P0: P(0, 0), P1: P(1, 2), P2: P(3, 2), P3: P(4, 0)}

	pts := c.Samples(16)
	if len(pts) != 17 {
		t.Fatalf("expected 17 points, got %d", len(pts))
	}
	if pts[0] != c.P0 {
		t.Errorf("first sample = %v, want %v", pts[0], c.P0)
	}
	if pts[16] != c.P3 {
		t.Errorf("last sample = %v, want %v", pts[16], c.P3)
	}
}
