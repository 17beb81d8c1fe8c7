// Package viz renders simulation frames to the terminal using braille
// sub-pixel characters.
package viz

import (
	"strings"

	"github.com/san-kum/ropesim/internal/geom"
)

// Braille patterns: 2x4 dots per character cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int // in character cells
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// PixelWidth and PixelHeight are the canvas dimensions in sub-pixels:
// two per cell horizontally, four vertically.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set lights the sub-pixel at (x, y). Out-of-bounds coordinates are
// dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCubic strokes a Bézier curve as a polyline of the given number
// of segments, mapping world coordinates through project.
func (c *Canvas) DrawCubic(cv geom.Cubic, segments int, project func(geom.Point) (int, int)) {
	pts := cv.Samples(segments)
	for i := 1; i < len(pts); i++ {
		x0, y0 := project(pts[i-1])
		x1, y1 := project(pts[i])
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawMarker lights a small diamond around a sub-pixel position.
func (c *Canvas) DrawMarker(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if absInt(dx)+absInt(dy) <= r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
