package sim

import (
	"context"
	"fmt"
)

// Runner drives a World through a fixed number of synthetic frames,
// feeding each frame to observers, metrics and an optional callback.
// It is used by the headless run command and by tests; the interactive
// frontends tick their worlds directly from their own frame loops.
type Runner struct {
	World     *World
	observers []Observer
	metrics   []Metric
}

func NewRunner(w *World) *Runner {
	return &Runner{World: w}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }

// Run advances the world steps times at frameMs-millisecond intervals
// of synthetic time. The callback (if non-nil) runs after each frame
// and may return false to finish early; ctx is checked between frames.
// The partial result is returned alongside a context error.
func (r *Runner) Run(ctx context.Context, steps int, frameMs float64, cb func(Frame) bool) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}
	if frameMs <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %f", frameMs)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Times:   make([]float64, 0, steps),
		States:  make([][]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := r.World.Advance(float64(i) * frameMs)

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}

		result.Times = append(result.Times, f.T)
		result.States = append(result.States, stateRow(f))
		result.Steps++

		if cb != nil && !cb(f) {
			break
		}
		if r.World.Stopped() {
			break
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
