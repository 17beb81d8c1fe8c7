package export

import (
	"strings"
	"testing"

	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
	"github.com/san-kum/ropesim/internal/sim"
)

func TestFrameToSVG(t *testing.T) {
	f := sim.Frame{
		Curve: geom.Cubic{
			P0: geom.P(100, 360),
			P1: geom.P(400, 100),
			P2: geom.P(800, 600),
			P3: geom.P(1100, 360),
		},
		Mode: input.ModeP1,
	}

	svg := FrameToSVG(f, 50, 1280, 720)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `C400.0,100.0 800.0,600.0 1100.0,360.0`) {
		t.Error("missing cubic path command")
	}
	if got := strings.Count(svg, "<line"); got != 5 {
		t.Errorf("expected 5 tangent ticks, got %d", got)
	}
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("expected 4 markers, got %d", got)
	}
	// P1 is active in ModeP1: one enlarged marker.
	if got := strings.Count(svg, `r="9.0"`); got != 1 {
		t.Errorf("expected 1 active marker, got %d", got)
	}
}

func TestFrameToSVGDegenerateTangents(t *testing.T) {
	p := geom.P(50, 50)
	f := sim.Frame{Curve: geom.Cubic{P0: p, P1: p, P2: p, P3: p}}

	svg := FrameToSVG(f, 50, 200, 200)
	if strings.Contains(svg, "<line") {
		t.Error("degenerate tangents must be skipped, not drawn")
	}
}
