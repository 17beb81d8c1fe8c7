package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ropesim/internal/geom"
	"github.com/san-kum/ropesim/internal/input"
)

const curveSegments = 96

var tangentTs = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

const normalOffset = 6.0

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawCurve()
	if a.ShowTangents {
		a.drawTangents()
	}
	a.drawMarkers()
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawCurve() {
	pts := a.frame.Curve.Samples(curveSegments)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(vec(pts[i-1]), vec(pts[i]), 2, ColCurve)
	}
}

func (a *App) drawTangents() {
	c := a.frame.Curve
	length := a.World.Params().TangentLength

	for _, t := range tangentTs {
		tan, ok := c.UnitTangent(t)
		if !ok {
			continue // degenerate sample, nothing to draw
		}
		base := c.Eval(t).Add(tan.Perp().Scale(normalOffset))
		tip := base.Add(tan.Scale(length))
		rl.DrawLineEx(vec(base), vec(tip), 1, ColTangent)
	}
}

func (a *App) drawMarkers() {
	f := a.frame
	c := f.Curve

	rl.DrawCircleV(vec(c.P0), 6, ColMarker)
	rl.DrawCircleV(vec(c.P3), 6, ColMarker)

	drawControl := func(p geom.Point, active bool) {
		if active {
			rl.DrawCircleV(vec(p), 9, ColActive)
		} else {
			rl.DrawCircleV(vec(p), 6, ColMarker)
		}
		rl.DrawCircleLines(int32(p.X), int32(p.Y), input.HitRadius, ColTextDim)
	}
	drawControl(c.P1, f.Mode == input.ModeP1 || f.Mode == input.ModeAll)
	drawControl(c.P2, f.Mode == input.ModeP2 || f.Mode == input.ModeAll)
}

func (a *App) drawHUD() {
	params := a.World.GetParams()

	y := int32(14)
	rl.DrawText(fmt.Sprintf("mode %s", a.frame.Mode), 16, y, 20, ColText)
	y += 26

	for i, key := range a.ParamKeys {
		col := ColTextDim
		prefix := "  "
		if i == a.ParamSel {
			col = ColText
			prefix = "> "
		}
		rl.DrawText(fmt.Sprintf("%s%s %.1f", prefix, key, params[key]), 16, y, 20, col)
		y += 22
	}

	help := "click point grab / empty lock   up/down param   left/right adjust   t tangents   q quit"
	rl.DrawText(help, 16, int32(rl.GetScreenHeight())-26, 10, ColTextDim)
}
