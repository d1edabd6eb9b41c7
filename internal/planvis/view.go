package planvis

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/paint"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/gridmap"
)

// markerRadiusM is the world-space radius used for the start/goal markers.
const markerRadiusM = 0.015

// pathWidthM is the world-space width of the plotted waypoint polyline.
const pathWidthM = 0.006

// View renders one Plan over the WorkSurface it was computed for.
type View struct {
	surface core.WorkSurface
	plan    *core.Plan
	grid    *gridmap.Grid
	camera  *Camera
	fitted  bool
}

// NewView builds a renderer for plan over surface, rasterizing surface at
// its own resolution (or the plan's override, if set) purely for display.
func NewView(surface core.WorkSurface, plan *core.Plan) *View {
	resolution := surface.ResolutionM
	if plan.Parameters.GridResolutionM > 0 {
		resolution = plan.Parameters.GridResolutionM
	}
	grid := gridmap.BuildGrid(surface, resolution)
	return &View{
		surface: surface,
		plan:    plan,
		grid:    grid,
		camera:  NewCamera(),
	}
}

// Layout draws the grid, the plan's waypoint path, and start/end markers
// into gtx, filling the available space.
func (v *View) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.Fill(gtx.Ops, color.NRGBA{R: 18, G: 18, B: 20, A: 255})

	if !v.fitted {
		v.camera.FitBounds(0, 0, v.surface.WidthM, v.surface.HeightM,
			float32(size.X), float32(size.Y), 20)
		v.fitted = true
	}

	for r := 0; r < v.grid.Rows; r++ {
		for c := 0; c < v.grid.Cols; c++ {
			x, y := v.grid.GridToWorld(r, c)
			col := colorFree
			if !v.grid.IsFree(r, c) {
				col = colorOccupied
			}
			drawCell(gtx, v.camera, x, y, v.grid.ResolutionM, col)
		}
	}

	drawPath(gtx, v.camera, v.plan.Waypoints, colorPath, pathWidthM)

	if n := len(v.plan.Waypoints); n > 0 {
		drawMarker(gtx, v.camera, v.plan.Waypoints[0], markerRadiusM, colorStart)
		drawMarker(gtx, v.camera, v.plan.Waypoints[n-1], markerRadiusM, colorGoal)
	}

	return layout.Dimensions{Size: size}
}
