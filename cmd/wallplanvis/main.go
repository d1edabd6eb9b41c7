// Command wallplanvis shows a gioui window rendering a hybrid plan over a
// demo wall surface: the occupancy grid, obstacles, and waypoint path.
package main

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/wallrobotics/wallplan/internal/core"
	"github.com/wallrobotics/wallplan/internal/planvis"
	"github.com/wallrobotics/wallplan/internal/wallplan"
)

func main() {
	surface := core.WorkSurface{
		WidthM:      2.0,
		HeightM:     2.0,
		ResolutionM: 0.1,
		Obstacles: []core.Obstacle{
			core.RectangleObstacle{CX: 0.6, CY: 1.2, W: 0.5, H: 0.6},
			core.CircleObstacle{CX: 1.5, CY: 0.5, R: 0.15},
		},
	}

	plan, err := wallplan.Plan(surface, core.PlanRequest{
		Algorithm:  core.Hybrid,
		Parameters: core.PlanParameters{Seed: 1},
	})
	if err != nil {
		log.Fatalf("planning failed: %v", err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("wallplan visualizer"),
			app.Size(unit.Dp(1000), unit.Dp(1000)),
		)

		application := planvis.NewApp(surface, plan)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
