package storage

import (
	"testing"

	"github.com/san-kum/ropesim/internal/sim"
)

func testResult() *sim.Result {
	width := len(sim.StateHeader())
	states := make([][]float64, 3)
	for i := range states {
		states[i] = make([]float64, width)
		states[i][0] = float64(i) * 10
	}
	return &sim.Result{
		Times:   []float64{0, 1.0 / 60, 2.0 / 60},
		States:  states,
		Metrics: map[string]float64{"settle_time": 1.25},
		Steps:   3,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	p := sim.DefaultParams()
	runID, err := s.Save(p, 60, testResult())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Stiffness != p.Stiffness || meta.Damping != p.Damping {
		t.Errorf("metadata params mismatch: %+v", meta)
	}
	if meta.Steps != 3 {
		t.Errorf("steps = %d, want 3", meta.Steps)
	}
	if meta.Metrics["settle_time"] != 1.25 {
		t.Errorf("metrics = %v", meta.Metrics)
	}
}

func TestLoadStates(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := s.Save(sim.DefaultParams(), 60, testResult())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	states, times, err := s.LoadStates(runID)
	if err != nil {
		t.Fatalf("LoadStates: %v", err)
	}
	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("got %d states / %d times", len(states), len(times))
	}
	if len(states[0]) != len(sim.StateHeader()) {
		t.Errorf("state width = %d, want %d", len(states[0]), len(sim.StateHeader()))
	}
	if states[2][0] != 20 {
		t.Errorf("states[2][0] = %f, want 20", states[2][0])
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store listed %d runs", len(runs))
	}

	if _, err := s.Save(sim.DefaultParams(), 60, testResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("listed %d runs, want 1", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	s := New("/nonexistent/ropesim-test")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("listed %d runs from missing dir", len(runs))
	}
}
