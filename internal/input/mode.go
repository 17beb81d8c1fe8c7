// Package input defines the pointer input mode and the click-driven
// transitions between modes.
package input

import "github.com/san-kum/ropesim/internal/geom"

// HitRadius is the maximum distance from a control point at which a
// click counts as grabbing that point.
const HitRadius = 25.0

// Mode selects which control points track the pointer.
type Mode int

const (
	// ModeAll drives both control points from the pointer.
	ModeAll Mode = iota
	// ModeP1 drives only the first control point.
	ModeP1
	// ModeP2 drives only the second control point.
	ModeP2
	// ModeLocked freezes target assignment and pointer updates.
	ModeLocked
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeP1:
		return "p1"
	case ModeP2:
		return "p2"
	case ModeLocked:
		return "locked"
	}
	return "unknown"
}

// Next returns the mode after a click at c, given the current positions
// of the two control points. A click within HitRadius of a point grabs
// it, p1 winning when both are in range; a click in empty space toggles
// between locked and all.
func Next(m Mode, c, p1, p2 geom.Point) Mode {
	const r2 = HitRadius * HitRadius
	switch {
	case c.DistSq(p1) < r2:
		return ModeP1
	case c.DistSq(p2) < r2:
		return ModeP2
	case m == ModeLocked:
		return ModeAll
	default:
		return ModeLocked
	}
}
