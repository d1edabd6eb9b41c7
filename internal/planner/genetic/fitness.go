package genetic

import (
	"math"

	"github.com/wallrobotics/wallplan/internal/core"
)

// fitness scores an interior ordering by combining a distance term and a
// smoothness term, following algorithms/genetic.py's fitness function:
// fitness = 10000/L + 5000*smoothness, where smoothness rewards low total
// turning angle relative to the maximum possible turn at every interior
// vertex. A zero-length path scores zero.
func (o *Optimizer) fitness(individual []indexed, start, end core.Waypoint) float64 {
	full := make([]core.Waypoint, 0, len(individual)+2)
	full = append(full, start)
	for _, ind := range individual {
		full = append(full, ind.wp)
	}
	full = append(full, end)

	length := core.PathLength(full)
	if length <= 0 {
		return 0
	}

	smoothness := pathSmoothness(full)
	return 10000/length + 5000*smoothness
}

// pathSmoothness returns max(0, 1 - totalTurnAngle/((n-2)*pi)) for a path of
// n waypoints, where totalTurnAngle sums the absolute heading change at
// each interior vertex. Paths with fewer than 3 waypoints have no interior
// vertex and are maximally smooth.
func pathSmoothness(path []core.Waypoint) float64 {
	n := len(path)
	if n < 3 {
		return 1.0
	}

	totalTurn := 0.0
	for i := 1; i < n-1; i++ {
		v1x, v1y := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		v2x, v2y := path[i+1].X-path[i].X, path[i+1].Y-path[i].Y

		len1 := math.Hypot(v1x, v1y)
		len2 := math.Hypot(v2x, v2y)
		if len1 == 0 || len2 == 0 {
			continue
		}

		cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
		cos = math.Max(-1.0, math.Min(1.0, cos))
		totalTurn += math.Acos(cos)
	}

	maxTurn := float64(n-2) * math.Pi
	if maxTurn <= 0 {
		return 1.0
	}

	smoothness := 1.0 - totalTurn/maxTurn
	if smoothness < 0 {
		return 0
	}
	return smoothness
}
