package geom

import "math"

type Point struct {
	X float64
	Y float64
}

func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistSq returns the squared distance between p and q. Hit testing
// compares against a squared radius, so no sqrt is taken.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector in the direction of p. The second
// return value is false when p has zero (or underflowed) length, in
// which case the zero point is returned and the caller should treat
// the sample as degenerate.
func (p Point) Normalize() (Point, bool) {
	n := p.Norm()
	if n == 0 {
		return Point{}, false
	}
	return Point{X: p.X / n, Y: p.Y / n}, true
}

// Perp returns p rotated 90° counter-clockwise (the normal direction
// used for offsetting tangent ticks off the curve).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
