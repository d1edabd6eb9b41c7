// Package coverage implements the boustrophedon coverage sweep: each row
// of the occupancy grid is split into obstacle-free segments, alternating
// sweep direction row to row, with A* bridging any segment-to-segment gap
// whose straight line crosses an occupied cell. It mirrors the structure
// of the reference algorithms/coverage.py CoveragePlanner.
package coverage

import (
	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/gridmap"
	"github.com/wallrobotics/wallplan/internal/planner/astarplan"
)

// Planner sweeps a fixed grid.
type Planner struct {
	grid  *gridmap.Grid
	astar *astarplan.Planner
}

// NewPlanner creates a coverage planner over grid, using astar to bridge
// obstacle gaps within a row sweep (see PlanWithObstacles).
func NewPlanner(grid *gridmap.Grid) *Planner {
	return &Planner{grid: grid, astar: astarplan.NewPlanner(grid)}
}

// segment is an inclusive column range [Start, End] of consecutive free cells
// in one row.
type segment struct {
	start, end int
}

// freeSegments finds the maximal runs of consecutive free columns in row.
func (p *Planner) freeSegments(row int) []segment {
	var segments []segment
	start := -1
	for c := 0; c < p.grid.Cols; c++ {
		if p.grid.IsFree(row, c) {
			if start == -1 {
				start = c
			}
		} else if start != -1 {
			segments = append(segments, segment{start, c - 1})
			start = -1
		}
	}
	if start != -1 {
		segments = append(segments, segment{start, p.grid.Cols - 1})
	}
	return segments
}

// PlanWithObstacles generates a coverage path that splits each row around
// obstacles and bridges segment-to-segment gaps with A* when the direct
// line of sight between them crosses an occupied cell. Rows alternate
// sweep direction: even rows left-to-right, odd rows right-to-left.
func (p *Planner) PlanWithObstacles() []core.Waypoint {
	var waypoints []core.Waypoint
	visited := make(map[gridmap.Cell]struct{})

	for row := 0; row < p.grid.Rows; row++ {
		segments := p.freeSegments(row)
		if row%2 == 1 {
			reverseSegments(segments)
		}

		for _, seg := range segments {
			segWaypoints := p.segmentWaypoints(row, seg, visited)
			if len(segWaypoints) == 0 {
				continue
			}
			if len(waypoints) > 0 {
				waypoints = p.bridgeGap(waypoints, segWaypoints[0])
			}
			waypoints = append(waypoints, segWaypoints...)
		}
	}

	return waypoints
}

func (p *Planner) segmentWaypoints(row int, seg segment, visited map[gridmap.Cell]struct{}) []core.Waypoint {
	var out []core.Waypoint
	emit := func(col int) {
		cell := gridmap.Cell{Row: row, Col: col}
		if _, ok := visited[cell]; ok {
			return
		}
		if !p.grid.IsFree(row, col) {
			return
		}
		visited[cell] = struct{}{}
		x, y := p.grid.GridToWorld(row, col)
		out = append(out, core.Waypoint{X: x, Y: y})
	}
	if row%2 == 0 {
		for c := seg.start; c <= seg.end; c++ {
			emit(c)
		}
	} else {
		for c := seg.end; c >= seg.start; c-- {
			emit(c)
		}
	}
	return out
}

// bridgeGap inserts an A* detour between the last emitted waypoint and next
// if the straight line between them crosses an occupied cell. If A* finds
// no path, the direct jump is left as-is (no error: an empty A* result is
// not a failure for the coverage pipeline).
func (p *Planner) bridgeGap(waypoints []core.Waypoint, next core.Waypoint) []core.Waypoint {
	prev := waypoints[len(waypoints)-1]
	if !p.needsNavigation(prev, next) {
		return waypoints
	}
	startR, startC := p.grid.WorldToGrid(prev.X, prev.Y)
	goalR, goalC := p.grid.WorldToGrid(next.X, next.Y)
	detour := p.astar.Plan(gridmap.Cell{Row: startR, Col: startC}, gridmap.Cell{Row: goalR, Col: goalC})
	if len(detour) > 2 {
		waypoints = append(waypoints, detour[1:len(detour)-1]...)
	}
	return waypoints
}

// needsNavigation is the line-of-sight check: sample the straight segment
// from prev to next at step <= resolution and report whether any sampled
// point falls in an occupied cell.
func (p *Planner) needsNavigation(prev, next core.Waypoint) bool {
	dist := core.Distance(prev, next)
	steps := int(dist/p.grid.ResolutionM) + 1
	if steps < 2 {
		steps = 2
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := prev.X + t*(next.X-prev.X)
		y := prev.Y + t*(next.Y-prev.Y)
		r, c := p.grid.WorldToGrid(x, y)
		if p.grid.IsValid(r, c) && !p.grid.IsFree(r, c) {
			return true
		}
	}
	return false
}

func reverseSegments(s []segment) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Plan is the simpler, obstacle-ignorant sweep retained for debugging (not
// used by the hybrid pipeline): it walks rows start_row.. alternating
// direction, emitting every free cell it sees in each row, and skips ahead
// to the next row containing a free cell whenever the current row has none.
func (p *Planner) Plan(startRow, startCol int) []core.Waypoint {
	var waypoints []core.Waypoint
	visited := make(map[gridmap.Cell]struct{})

	row := startRow
	direction := 1

	for row < p.grid.Rows {
		rowHasFree := false
		if direction == 1 {
			for c := 0; c < p.grid.Cols; c++ {
				rowHasFree = p.emitIfFree(row, c, visited, &waypoints) || rowHasFree
			}
		} else {
			for c := p.grid.Cols - 1; c >= 0; c-- {
				rowHasFree = p.emitIfFree(row, c, visited, &waypoints) || rowHasFree
			}
		}

		row++
		direction *= -1

		if !rowHasFree {
			for row < p.grid.Rows && !p.anyFree(row) {
				row++
			}
		}
	}

	_ = startCol // matches the reference signature; the sweep always scans full rows regardless
	return waypoints
}

func (p *Planner) emitIfFree(row, col int, visited map[gridmap.Cell]struct{}, waypoints *[]core.Waypoint) bool {
	if !p.grid.IsFree(row, col) {
		return false
	}
	cell := gridmap.Cell{Row: row, Col: col}
	if _, ok := visited[cell]; !ok {
		visited[cell] = struct{}{}
		x, y := p.grid.GridToWorld(row, col)
		*waypoints = append(*waypoints, core.Waypoint{X: x, Y: y})
	}
	return true
}

func (p *Planner) anyFree(row int) bool {
	for c := 0; c < p.grid.Cols; c++ {
		if p.grid.IsFree(row, c) {
			return true
		}
	}
	return false
}
