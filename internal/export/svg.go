// Package export renders simulation frames to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
	"github.com/san-kum/ropesim/internal/sim"
)

// Tangent ticks are drawn at these parameter values, offset 6 units
// along the curve normal.
var tangentTs = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

const normalOffset = 6.0

// FrameToSVG renders one frame as a standalone SVG document: the curve
// as a native cubic path, tangent ticks of the configured length, and
// circular markers for the endpoints and control points. The control
// point active in the frame's input mode is drawn larger and brighter.
func FrameToSVG(f sim.Frame, tangentLength float64, width, height int) string {
	c := f.Curve

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#b4b4b4" stroke-width="2" d="M%.1f,%.1f C%.1f,%.1f %.1f,%.1f %.1f,%.1f"/>
`, c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y))

	for _, t := range tangentTs {
		tan, ok := c.UnitTangent(t)
		if !ok {
			continue // degenerate sample, skip
		}
		base := c.Eval(t).Add(tan.Perp().Scale(normalOffset))
		tip := base.Add(tan.Scale(tangentLength))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#5a5a5a" stroke-width="1"/>
`, base.X, base.Y, tip.X, tip.Y))
	}

	writeMarker(&sb, c.P0, false)
	writeMarker(&sb, c.P3, false)
	writeMarker(&sb, c.P1, f.Mode == input.ModeP1 || f.Mode == input.ModeAll)
	writeMarker(&sb, c.P2, f.Mode == input.ModeP2 || f.Mode == input.ModeAll)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeMarker(sb *strings.Builder, p geom.Point, active bool) {
	r, fill := 6.0, "#8c8c8c"
	if active {
		r, fill = 9.0, "#ffffff"
	}
	fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, p.X, p.Y, r, fill)
}
