// Package sim owns the mutable simulation state and the per-frame
// update loop.
//
//   - [World]: the simulation context: tuning parameters, the two
//     spring-driven control points, the fixed curve endpoints, the live
//     pointer, and the input mode
//   - [Runner]: drives [World.Advance] at a fixed synthetic frame
//     interval with context cancellation, observers, and metrics
//
// The model is single-threaded and cooperative: input callbacks and
// frame ticks run to completion in strict interleaving, so no locking
// is used anywhere in the package.
package sim
