package puzzle

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// JSON schema types. This is the plain-data contract consumed by the
// rendering and physics shim layers; no other persistence belongs to the
// core.
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MirrorJSON struct {
	Kind            string      `json:"kind"`
	Center          PointJSON   `json:"center"`
	Width           float64     `json:"width"`
	Height          float64     `json:"height"`
	TopWidth        float64     `json:"topWidth,omitempty"`
	Skew            float64     `json:"skew,omitempty"`
	RotationDegrees float64     `json:"rotationDegrees"`
	SurfaceArea     int         `json:"surfaceArea"`
	Vertices        []PointJSON `json:"vertices"`
}

type PathJSON struct {
	Points      []PointJSON `json:"points"`
	Reflections int         `json:"reflections"`
	Distance    float64     `json:"distance"`
}

type ZoneJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Name   string  `json:"name,omitempty"`
}

func pointToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

func MirrorToJSON(m Mirror, gridSize float64) MirrorJSON {
	vs := m.Vertices()
	points := make([]PointJSON, len(vs))
	for i, v := range vs {
		points[i] = pointToJSON(v)
	}
	return MirrorJSON{
		Kind:            m.Kind.String(),
		Center:          pointToJSON(m.Center),
		Width:           m.Width,
		Height:          m.Height,
		TopWidth:        m.TopWidth,
		Skew:            m.Skew,
		RotationDegrees: m.RotationDegrees,
		SurfaceArea:     int(m.SurfaceArea(gridSize)),
		Vertices:        points,
	}
}

func ArrivalToPathJSON(a Arrival) PathJSON {
	points := make([]PointJSON, len(a.PathPoints))
	for i, v := range a.PathPoints {
		points[i] = pointToJSON(v)
	}
	return PathJSON{
		Points:      points,
		Reflections: a.Reflections,
		Distance:    a.Distance,
	}
}

// SaveLayoutToJSON writes the mirror set, traced paths, and zones for a
// level to a JSON file.
func SaveLayoutToJSON(filename string, geom LevelGeometry, mirrors []Mirror, arrivals []Arrival) error {
	container := struct {
		Mirrors []MirrorJSON `json:"mirrors"`
		Paths   []PathJSON   `json:"paths,omitempty"`
		Zones   []ZoneJSON   `json:"zones"`
	}{
		Mirrors: make([]MirrorJSON, 0, len(mirrors)),
		Paths:   make([]PathJSON, 0, len(arrivals)),
	}

	for _, m := range mirrors {
		container.Mirrors = append(container.Mirrors, MirrorToJSON(m, geom.GridSize))
	}
	for _, a := range arrivals {
		if a.Distance != INF {
			container.Paths = append(container.Paths, ArrivalToPathJSON(a))
		}
	}
	center := geom.Center()
	container.Zones = []ZoneJSON{
		{X: center.X, Y: center.Y, Radius: geom.TargetSafeRadius, Name: "exclusion"},
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling layout: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
