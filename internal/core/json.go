package core

import (
	"encoding/json"
	"fmt"

	"github.com/wallrobotics/wallplan/internal/geom"
)

// MarshalJSON encodes k as its lowercase name ("coverage", "astar",
// "genetic", "hybrid").
func (k AlgorithmKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses one of the names MarshalJSON produces.
func (k *AlgorithmKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "coverage":
		*k = Coverage
	case "astar":
		*k = AStar
	case "genetic":
		*k = Genetic
	case "hybrid":
		*k = Hybrid
	default:
		return fmt.Errorf("core: unrecognized algorithm kind %q", name)
	}
	return nil
}

// obstacleEnvelope is the wire form of an Obstacle: a kind tag plus the
// union of every concrete obstacle's fields, following the same
// tagged-struct approach the reference service used for its obstacle
// payloads.
type obstacleEnvelope struct {
	Kind     string       `json:"kind"`
	CX       float64      `json:"cx,omitempty"`
	CY       float64      `json:"cy,omitempty"`
	W        float64      `json:"w,omitempty"`
	H        float64      `json:"h,omitempty"`
	R        float64      `json:"r,omitempty"`
	Vertices []geom.Point `json:"vertices,omitempty"`
}

func toEnvelope(o Obstacle) obstacleEnvelope {
	switch v := o.(type) {
	case RectangleObstacle:
		return obstacleEnvelope{Kind: "rectangle", CX: v.CX, CY: v.CY, W: v.W, H: v.H}
	case CircleObstacle:
		return obstacleEnvelope{Kind: "circle", CX: v.CX, CY: v.CY, R: v.R}
	case PolygonObstacle:
		return obstacleEnvelope{Kind: "polygon", Vertices: v.Vertices}
	default:
		return obstacleEnvelope{Kind: "unknown"}
	}
}

func (e obstacleEnvelope) toObstacle() (Obstacle, error) {
	switch e.Kind {
	case "rectangle":
		return RectangleObstacle{CX: e.CX, CY: e.CY, W: e.W, H: e.H}, nil
	case "circle":
		return CircleObstacle{CX: e.CX, CY: e.CY, R: e.R}, nil
	case "polygon":
		return PolygonObstacle{Vertices: e.Vertices}, nil
	default:
		return nil, fmt.Errorf("core: unrecognized obstacle kind %q", e.Kind)
	}
}

// workSurfaceWire mirrors WorkSurface's fields for JSON purposes, with
// Obstacles replaced by its envelope form.
type workSurfaceWire struct {
	WidthM      float64            `json:"width_m"`
	HeightM     float64            `json:"height_m"`
	ResolutionM float64            `json:"resolution_m"`
	Obstacles   []obstacleEnvelope `json:"obstacles,omitempty"`
}

// MarshalJSON implements json.Marshaler, since Obstacles is a slice of
// interface values that encoding/json cannot decode back into their
// concrete types without the kind tag added here.
func (s WorkSurface) MarshalJSON() ([]byte, error) {
	wire := workSurfaceWire{
		WidthM:      s.WidthM,
		HeightM:     s.HeightM,
		ResolutionM: s.ResolutionM,
		Obstacles:   make([]obstacleEnvelope, len(s.Obstacles)),
	}
	for i, o := range s.Obstacles {
		wire.Obstacles[i] = toEnvelope(o)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing concrete
// Obstacle values from their kind tag.
func (s *WorkSurface) UnmarshalJSON(data []byte) error {
	var wire workSurfaceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	obstacles := make([]Obstacle, len(wire.Obstacles))
	for i, e := range wire.Obstacles {
		o, err := e.toObstacle()
		if err != nil {
			return err
		}
		obstacles[i] = o
	}
	s.WidthM = wire.WidthM
	s.HeightM = wire.HeightM
	s.ResolutionM = wire.ResolutionM
	s.Obstacles = obstacles
	return nil
}
