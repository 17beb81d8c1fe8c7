// Package geom provides the planar geometry primitives for the rope
// simulation:
//
//   - [Point]: an immutable (x, y) value used both as a coordinate and
//     as a 2D vector
//   - [Cubic]: a cubic Bézier segment with exact Bernstein-basis
//     evaluation and first derivative
//
// Everything here is stateless and side-effect-free; the physics and
// rendering layers own all mutable state.
package geom
