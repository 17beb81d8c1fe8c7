package input

import (
	"testing"

	"github.com/san-kum/ropesim/internal/geom"
)

func TestNextTransitionTable(t *testing.T) {
	p1 := geom.P(100, 100)
	p2 := geom.P(300, 100)
	empty := geom.P(600, 400)

	tests := []struct {
		name  string
		from  Mode
		click geom.Point
		want  Mode
	}{
		{"all empty locks", ModeAll, empty, ModeLocked},
		{"locked empty unlocks", ModeLocked, empty, ModeAll},
		{"p1 empty locks", ModeP1, empty, ModeLocked},
		{"p2 empty locks", ModeP2, empty, ModeLocked},
		{"all near p1", ModeAll, p1, ModeP1},
		{"locked near p1", ModeLocked, p1, ModeP1},
		{"all near p2", ModeAll, p2, ModeP2},
		{"p1 near p2", ModeP1, p2, ModeP2},
	}

	for _, tt := range tests {
		if got := Next(tt.from, tt.click, p1, p2); got != tt.want {
			t.Errorf("%s: Next(%v, %v) = %v, want %v", tt.name, tt.from, tt.click, got, tt.want)
		}
	}
}

func TestNextHitRadiusExact(t *testing.T) {
	p1 := geom.P(100, 100)
	p2 := geom.P(500, 100)

	inside := geom.P(100+HitRadius-0.01, 100)
	if got := Next(ModeAll, inside, p1, p2); got != ModeP1 {
		t.Errorf("click just inside radius: got %v, want %v", got, ModeP1)
	}

	outside := geom.P(100+HitRadius+0.01, 100)
	if got := Next(ModeAll, outside, p1, p2); got != ModeLocked {
		t.Errorf("click just outside radius: got %v, want %v", got, ModeLocked)
	}
}

func TestNextTieBreakFavorsP1(t *testing.T) {
	p1 := geom.P(100, 100)
	p2 := geom.P(110, 100) // overlapping hit circles

	if got := Next(ModeAll, geom.P(105, 100), p1, p2); got != ModeP1 {
		t.Errorf("overlapping hit: got %v, want %v", got, ModeP1)
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{
		ModeAll:    "all",
		ModeP1:     "p1",
		ModeP2:     "p2",
		ModeLocked: "locked",
		Mode(99):   "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
