package planvis

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/wallrobotics/wallplan/internal/core"
)

var (
	colorFree     = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorOccupied = color.NRGBA{R: 60, G: 60, B: 65, A: 255}
	colorPath     = color.NRGBA{R: 80, G: 140, B: 255, A: 230}
	colorStart    = color.NRGBA{R: 80, G: 200, B: 120, A: 255}
	colorGoal     = color.NRGBA{R: 220, G: 90, B: 90, A: 255}
)

// drawCell fills one grid cell's world-space footprint.
func drawCell(gtx layout.Context, camera *Camera, cellCenterX, cellCenterY, resolution float64, col color.NRGBA) {
	half := resolution / 2
	x1, y1 := camera.WorldToScreen(cellCenterX-half, cellCenterY-half)
	x2, y2 := camera.WorldToScreen(cellCenterX+half, cellCenterY+half)
	drawRect(gtx, x1, y1, x2, y2, col)
}

func drawRect(gtx layout.Context, x1, y1, x2, y2 float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x2, y1))
	path.LineTo(f32.Pt(x2, y2))
	path.LineTo(f32.Pt(x1, y2))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// drawPath draws waypoints as a connected polyline of width (world meters).
func drawPath(gtx layout.Context, camera *Camera, waypoints []core.Waypoint, col color.NRGBA, width float32) {
	if len(waypoints) < 2 {
		return
	}
	for i := 0; i < len(waypoints)-1; i++ {
		x1, y1 := camera.WorldToScreen(waypoints[i].X, waypoints[i].Y)
		x2, y2 := camera.WorldToScreen(waypoints[i+1].X, waypoints[i+1].Y)
		drawSegment(gtx, x1, y1, x2, y2, width*camera.Zoom, col)
	}
}

func drawSegment(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	const segments = 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// drawMarker draws a filled circle at a waypoint, used for the plan's start
// and end markers.
func drawMarker(gtx layout.Context, camera *Camera, wp core.Waypoint, radiusM float64, col color.NRGBA) {
	x, y := camera.WorldToScreen(wp.X, wp.Y)
	r := float32(radiusM) * camera.Zoom
	drawFilledCircle(gtx, x, y, r, col)
}
