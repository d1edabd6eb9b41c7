// Package astarplan implements 8-connected A* over an occupancy grid, plus
// a nearest-free-cell fallback search. It follows the heap.Interface node
// shape the reference repository used for its space-time A* variants
// (astarNode with a heap index, a monotonic tie-break counter), adapted
// from grid-graph search to plain grid cells, matching the cost model,
// heuristic, and reopening rules of the original Python AStarPlanner.
package astarplan

import (
	"container/heap"
	"math"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/gridmap"
)

// sqrt2 is the diagonal step cost.
const sqrt2 = math.Sqrt2

// DefaultMaxRadius is the default search radius for FindNearestFreeCell.
const DefaultMaxRadius = 10

// Planner runs A* searches over a fixed grid.
type Planner struct {
	grid *gridmap.Grid
	// ForbidCornerCutting rejects a diagonal step when either axis-aligned
	// cell between the two endpoints is occupied. Default false preserves
	// the reference's permissive behavior.
	ForbidCornerCutting bool
}

// NewPlanner creates an A* planner over grid.
func NewPlanner(grid *gridmap.Grid) *Planner {
	return &Planner{grid: grid}
}

// node is one A* search state on the open/closed accounting.
type node struct {
	cell   gridmap.Cell
	g, f   float64
	seq    int // insertion counter, for FIFO tie-break among equal f
	parent *node
	index  int // heap.Interface bookkeeping
}

type openHeap []*node

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *openHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

func heuristic(a, b gridmap.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

func stepCost(a, b gridmap.Cell) float64 {
	if a.Row != b.Row && a.Col != b.Col {
		return sqrt2
	}
	return 1.0
}

// Plan finds the shortest 8-connected path from start to goal and returns
// it as grid-center waypoints. It returns nil if start or goal is
// occupied/out of bounds, or if no path exists.
func (p *Planner) Plan(start, goal gridmap.Cell) []core.Waypoint {
	if !p.grid.IsFree(start.Row, start.Col) || !p.grid.IsFree(goal.Row, goal.Col) {
		return nil
	}

	open := &openHeap{}
	heap.Init(open)

	seq := 0
	best := map[gridmap.Cell]float64{start: 0}
	startNode := &node{cell: start, g: 0, f: heuristic(start, goal), seq: seq}
	heap.Push(open, startNode)

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)

		// Stale entry: a better g for this cell was already found and pushed.
		if g, ok := best[current.cell]; ok && current.g > g {
			continue
		}

		if current.cell == goal {
			return reconstruct(current, p.grid)
		}

		for _, nb := range p.grid.Neighbors(current.cell.Row, current.cell.Col, true) {
			if p.ForbidCornerCutting && isDiagonal(current.cell, nb) && !p.corridorClear(current.cell, nb) {
				continue
			}
			tentativeG := current.g + stepCost(current.cell, nb)
			if g, ok := best[nb]; ok && tentativeG >= g {
				continue
			}
			best[nb] = tentativeG
			seq++
			heap.Push(open, &node{
				cell:   nb,
				g:      tentativeG,
				f:      tentativeG + heuristic(nb, goal),
				seq:    seq,
				parent: current,
			})
		}
	}

	return nil
}

func isDiagonal(a, b gridmap.Cell) bool {
	return a.Row != b.Row && a.Col != b.Col
}

func (p *Planner) corridorClear(a, b gridmap.Cell) bool {
	o1, o2 := gridmap.OrthogonalsBetween(a.Row, a.Col, b.Row-a.Row, b.Col-a.Col)
	return p.grid.IsFree(o1.Row, o1.Col) && p.grid.IsFree(o2.Row, o2.Col)
}

func reconstruct(n *node, grid *gridmap.Grid) []core.Waypoint {
	var cells []gridmap.Cell
	for cur := n; cur != nil; cur = cur.parent {
		cells = append(cells, cur.cell)
	}
	waypoints := make([]core.Waypoint, len(cells))
	for i, c := range cells {
		x, y := grid.GridToWorld(c.Row, c.Col)
		waypoints[len(cells)-1-i] = core.Waypoint{X: x, Y: y}
	}
	return waypoints
}

// FindNearestFreeCell expands a Chebyshev ring around target (radius 1..
// maxRadius), scanning rows and columns in row-major order, and returns the
// first free valid cell encountered. target itself is returned if already
// free. Returns ok=false if nothing free is found within maxRadius.
func (p *Planner) FindNearestFreeCell(target gridmap.Cell, maxRadius int) (gridmap.Cell, bool) {
	if p.grid.IsFree(target.Row, target.Col) {
		return target, true
	}
	for r := 1; r <= maxRadius; r++ {
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				cell := gridmap.Cell{Row: target.Row + dr, Col: target.Col + dc}
				if p.grid.IsFree(cell.Row, cell.Col) {
					return cell, true
				}
			}
		}
	}
	return gridmap.Cell{}, false
}
