package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/ropesim/internal/geom"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("Grid[0][0] = %x, want 2801", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100) // silently dropped

	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("Clear left %x", c.Grid[0][0])
	}
}

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(40, 10)
	if c.PixelWidth() != 80 || c.PixelHeight() != 40 {
		t.Errorf("pixel dims = %dx%d", c.PixelWidth(), c.PixelHeight())
	}

	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("String has %d rows, want 10", len(lines))
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not set")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line end not set")
	}
}

func TestDrawCubic(t *testing.T) {
	c := NewCanvas(20, 5)
	curve := geom.Cubic{
		P0: geom.P(0, 0),
		P1: geom.P(10, 20),
		P2: geom.P(30, 20),
		P3: geom.P(39, 0),
	}

	c.DrawCubic(curve, 16, func(p geom.Point) (int, int) {
		return int(p.X), int(p.Y)
	})

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("curve stroke lit no cells")
	}
}
