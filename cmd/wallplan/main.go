// Command wallplan runs coverage planning algorithms against a wall surface
// and prints (or writes, as JSON) the resulting plan metrics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/wallplan"
)

func main() {
	algorithm := flag.String("algorithm", "all", "coverage|astar|genetic|hybrid|all")
	surfaceFile := flag.String("surface", "", "path to a JSON WorkSurface file (default: built-in demo surface)")
	outputFile := flag.String("output", "", "write the resulting plan(s) as JSON to this path instead of stdout")
	seed := flag.Int64("seed", 42, "RNG seed for genetic/hybrid modes")
	startRow := flag.Int("start-row", 0, "astar start row")
	startCol := flag.Int("start-col", 0, "astar start col")
	goalRow := flag.Int("goal-row", -1, "astar goal row (-1 = grid's last row)")
	goalCol := flag.Int("goal-col", -1, "astar goal col (-1 = grid's last col)")

	flag.Parse()

	surface, err := loadSurface(*surfaceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading surface: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Surface: %.1fx%.1fm at %.2fm resolution, %d obstacle(s)\n",
		surface.WidthM, surface.HeightM, surface.ResolutionM, len(surface.Obstacles))

	astarParams := core.PlanParameters{StartRow: *startRow, StartCol: *startCol, HasStart: true}
	if *goalRow >= 0 && *goalCol >= 0 {
		astarParams.GoalRow, astarParams.GoalCol, astarParams.HasGoal = *goalRow, *goalCol, true
	}

	requests := map[string]core.PlanRequest{
		"coverage": {Algorithm: core.Coverage},
		"astar":    {Algorithm: core.AStar, Parameters: astarParams},
		"genetic":  {Algorithm: core.Genetic, Parameters: core.PlanParameters{Seed: *seed}},
		"hybrid":   {Algorithm: core.Hybrid, Parameters: core.PlanParameters{Seed: *seed}},
	}

	var labels []string
	if *algorithm == "all" {
		labels = []string{"coverage", "astar", "genetic", "hybrid"}
	} else if _, ok := requests[*algorithm]; ok {
		labels = []string{*algorithm}
	} else {
		fmt.Fprintf(os.Stderr, "Error: unrecognized -algorithm %q\n", *algorithm)
		os.Exit(1)
	}

	plans := make([]*core.Plan, 0, len(labels))
	for _, label := range labels {
		plan := runAlgorithm(label, surface, requests[label])
		if plan != nil {
			plans = append(plans, plan)
		}
	}

	if *outputFile != "" {
		if err := writePlans(*outputFile, plans); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("\nPlans written to: %s\n", *outputFile)
	}
}

// loadSurface reads a JSON WorkSurface from path, or returns the built-in
// demo surface if path is empty.
func loadSurface(path string) (core.WorkSurface, error) {
	if path == "" {
		return demoSurface(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.WorkSurface{}, err
	}
	var surface core.WorkSurface
	if err := json.Unmarshal(data, &surface); err != nil {
		return core.WorkSurface{}, err
	}
	return surface, nil
}

func writePlans(path string, plans []*core.Plan) error {
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func runAlgorithm(label string, surface core.WorkSurface, request core.PlanRequest) *core.Plan {
	fmt.Printf("\n--- %s ---\n", label)
	start := time.Now()
	plan, err := wallplan.Plan(surface, request)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("failed: %v\n", err)
		return nil
	}
	fmt.Printf("waypoints=%d distance=%.2fm est_time=%.1fs coverage=%.1f%% planning_time=%v (wall=%v)\n",
		len(plan.Waypoints), plan.TotalDistanceM, plan.EstimatedTimeS,
		plan.CoverageFraction*100, time.Duration(plan.PlanningTimeS*float64(time.Second)), elapsed)
	return plan
}

// demoSurface builds a 2x2m wall section with a window and a junction box
// obstructing coverage.
func demoSurface() core.WorkSurface {
	return core.WorkSurface{
		WidthM:      2.0,
		HeightM:     2.0,
		ResolutionM: 0.1,
		Obstacles: []core.Obstacle{
			core.RectangleObstacle{CX: 0.6, CY: 1.2, W: 0.5, H: 0.6}, // window
			core.CircleObstacle{CX: 1.5, CY: 0.5, R: 0.15},           // junction box
		},
	}
}
