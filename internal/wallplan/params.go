package wallplan

import "github.com/wallrobotics/wallplan/internal/core"

// DecodeParameters translates an untyped parameter map (as arrives from an
// external API request) into a core.PlanParameters. Unknown keys are
// ignored; missing keys leave the corresponding field at its zero value,
// to be filled in later by PlanParameters.WithDefaults.
func DecodeParameters(raw map[string]any) core.PlanParameters {
	var p core.PlanParameters

	if v, ok := floatField(raw, "grid_resolution"); ok {
		p.GridResolutionM = v
	}

	if v, ok := intField(raw, "start_row"); ok {
		p.StartRow = v
		p.HasStart = true
	}
	if v, ok := intField(raw, "start_col"); ok {
		p.StartCol = v
		p.HasStart = true
	}
	if v, ok := intField(raw, "goal_row"); ok {
		p.GoalRow = v
		p.HasGoal = true
	}
	if v, ok := intField(raw, "goal_col"); ok {
		p.GoalCol = v
		p.HasGoal = true
	}

	if v, ok := intField(raw, "population_size"); ok {
		p.PopulationSize = v
	}
	if v, ok := intField(raw, "generations"); ok {
		p.Generations = v
	}
	if v, ok := floatField(raw, "mutation_rate"); ok {
		p.MutationRate = v
	}
	if v, ok := floatField(raw, "crossover_rate"); ok {
		p.CrossoverRate = v
	}
	if v, ok := intField(raw, "tournament_size"); ok {
		p.TournamentSize = v
	}
	if v, ok := intField(raw, "seed"); ok {
		p.Seed = int64(v)
	}

	if v, ok := raw["initial_waypoints"].([]core.Waypoint); ok {
		p.InitialWaypoints = v
	}

	if v, ok := raw["forbid_corner_cutting"].(bool); ok {
		p.ForbidCornerCutting = v
	}

	if v, ok := floatField(raw, "speed_mps"); ok {
		p.SpeedMPS = v
	}

	return p
}

// floatField accepts either float64 or int values, since callers decoding
// from JSON will hand back float64 for any bare number.
func floatField(raw map[string]any, key string) (float64, bool) {
	switch v := raw[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func intField(raw map[string]any, key string) (int, bool) {
	switch v := raw[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
