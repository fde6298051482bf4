package puzzle

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// TraceParams contains parameters to guide tracing.
type TraceParams struct {
	// Stop tracing after this many reflections.
	MaxReflections int
	// Stop tracing after the ray has traveled this far, in pixels.
	MaxDistance float64
	// The ray counts as a hit once it passes within this distance of the
	// target at the arena center.
	TargetRadius float64
}

// Arrival describes a ray that reached the target.
type Arrival struct {
	// Position of the ray when it entered the target radius.
	HitPosition r2.Vec
	// Every point where the ray changed direction, spawn included.
	PathPoints []r2.Vec
	// Reflections is the total wall and mirror bounce count.
	Reflections int
	// Total distance traveled, in pixels.
	Distance float64
}

const INF = 1e9

// NoHit is returned when a trace terminates without reaching the target.
var NoHit = Arrival{Distance: INF}

// Trace advances the ray one velocity step at a time until it reaches the
// target or exceeds the budget in params. The ray is mutated in place; pass
// a copy to keep the original.
func Trace(ray *Ray, mirrors []Mirror, geom LevelGeometry, params TraceParams) Arrival {
	target := geom.Center()
	path := []r2.Vec{ray.Position}
	distance := 0.0

	for distance < params.MaxDistance {
		before := ray.Position
		hit := ray.Advance(ray.Velocity, mirrors, geom.GridSize)
		distance += dist(before, ray.Position)

		if dist(ray.Position, target) <= params.TargetRadius {
			return Arrival{
				HitPosition: ray.Position,
				PathPoints:  append(path, ray.Position),
				Reflections: ray.Reflections,
				Distance:    distance,
			}
		}

		switch {
		case hit >= 0:
			ray.BounceOffMirror(mirrors[hit], geom.GridSize)
			path = append(path, ray.Position)
		case !geom.Arena.Contains(ray.Position):
			ray.BounceOffWall(geom.Arena, geom.GridSize)
			path = append(path, ray.Position)
		}

		if ray.Reflections > params.MaxReflections {
			return NoHit
		}
	}
	return NoHit
}
