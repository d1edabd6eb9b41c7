package gridmap

import (
	"math"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/geom"
)

// GridBuilder accumulates obstacles over a blank grid and yields an
// immutable Grid. It is the only place occupancy bits are ever written;
// once Build returns, nothing in this package can mutate the result.
type GridBuilder struct {
	resolution float64
	rows, cols int
	occupied   []bool
}

// NewGridBuilder creates an all-free builder sized for width x height at
// the given resolution. cols = ceil(width/resolution), rows =
// ceil(height/resolution).
func NewGridBuilder(widthM, heightM, resolutionM float64) *GridBuilder {
	cols := int(math.Ceil(widthM / resolutionM))
	rows := int(math.Ceil(heightM / resolutionM))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &GridBuilder{
		resolution: resolutionM,
		rows:       rows,
		cols:       cols,
		occupied:   make([]bool, rows*cols),
	}
}

// AddObstacles marks every cell whose center lies inside any given
// obstacle's shape as occupied. Cells outside [0,rows)x[0,cols) are
// silently ignored, and only the obstacle's bounding box is scanned.
func (b *GridBuilder) AddObstacles(obstacles []core.Obstacle) {
	for _, o := range obstacles {
		b.addObstacle(o.Shape())
	}
}

func (b *GridBuilder) addObstacle(shape geom.Shape) {
	minX, minY, maxX, maxY := shape.Bounds()

	minCol := int(minX / b.resolution)
	minRow := int(minY / b.resolution)
	maxCol := int(maxX/b.resolution) + 1
	maxRow := int(maxY/b.resolution) + 1

	if minCol < 0 {
		minCol = 0
	}
	if minRow < 0 {
		minRow = 0
	}
	if maxCol > b.cols {
		maxCol = b.cols
	}
	if maxRow > b.rows {
		maxRow = b.rows
	}

	for r := minRow; r < maxRow; r++ {
		for c := minCol; c < maxCol; c++ {
			cx := (float64(c) + 0.5) * b.resolution
			cy := (float64(r) + 0.5) * b.resolution
			if shape.Contains(geom.Point{X: cx, Y: cy}) {
				b.occupied[r*b.cols+c] = true
			}
		}
	}
}

// Build finalizes the grid. The builder must not be reused afterward.
func (b *GridBuilder) Build() *Grid {
	occupied := make([]bool, len(b.occupied))
	copy(occupied, b.occupied)
	return &Grid{
		Rows:        b.rows,
		Cols:        b.cols,
		ResolutionM: b.resolution,
		occupied:    occupied,
	}
}

// BuildGrid is a convenience wrapper: build and load obstacles from a
// WorkSurface in one call, using resolutionM in place of the surface's own
// resolution if resolutionM is nonzero. It does not validate the surface;
// callers run WorkSurface.Validate first.
func BuildGrid(surface core.WorkSurface, resolutionM float64) *Grid {
	res := surface.ResolutionM
	if resolutionM > 0 {
		res = resolutionM
	}
	b := NewGridBuilder(surface.WidthM, surface.HeightM, res)
	b.AddObstacles(surface.Obstacles)
	return b.Build()
}
