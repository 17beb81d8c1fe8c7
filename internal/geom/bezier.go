package geom

// Cubic is a cubic Bézier segment. P0 and P3 are the on-curve
// endpoints; P1 and P2 are the interior control points.
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the curve position at parameter t using the Bernstein
// basis weights (1-t)³, 3(1-t)²t, 3(1-t)t², t³. Exact for t in [0,1];
// values outside that range extrapolate.
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	w0 := mt * mt * mt
	w1 := 3 * mt * mt * t
	w2 := 3 * mt * t * t
	w3 := t * t * t

	return Point{
		X: w0*c.P0.X + w1*c.P1.X + w2*c.P2.X + w3*c.P3.X,
		Y: w0*c.P0.Y + w1*c.P1.Y + w2*c.P2.Y + w3*c.P3.Y,
	}
}

// Deriv returns the first derivative vector
//
//	3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
//
// It is a direction vector, not normalized.
func (c Cubic) Deriv(t float64) Point {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0).Scale(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Scale(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Scale(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// UnitTangent returns the normalized tangent at t. ok is false when
// the derivative vanishes (all four points coincident at that t, or
// numeric underflow); callers skip drawing that sample.
func (c Cubic) UnitTangent(t float64) (tan Point, ok bool) {
	return c.Deriv(t).Normalize()
}

// Samples flattens the curve into n segments, returning n+1 points
// from Eval(0) through Eval(1).
func (c Cubic) Samples(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	return pts
}
