package puzzle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// AngleSnapDegrees quantizes every reflected direction. This is a
	// deliberate gameplay simplification, not a physics artifact.
	AngleSnapDegrees = 15.0

	// subStepFraction caps a single advance at this fraction of the grid
	// size before sub-stepping kicks in.
	subStepFraction = 0.1

	// nudgeFraction is how far (as a fraction of the grid size) a ray is
	// pushed along its new direction after reflecting, so the same contact
	// does not immediately re-trigger. Must exceed subStepFraction: a
	// sampled contact can sit up to one sub-step inside the polygon, and
	// the nudge has to carry the ray back out.
	nudgeFraction = 0.15

	// wallBuffer is how far outside the arena a ray may drift before it is
	// clamped back inside ahead of the wall reflection.
	wallBuffer = 2.0
)

// Ray is a moving point with a fixed-magnitude velocity. Speed is the
// invariant magnitude; reflections only ever change direction.
type Ray struct {
	Position    r2.Vec
	Velocity    r2.Vec
	Speed       float64
	Reflections int
}

// NewRay spawns a ray at pos aimed along dir at the given speed.
func NewRay(pos, dir r2.Vec, speed float64) *Ray {
	return &Ray{
		Position: pos,
		Velocity: withSpeed(dir, speed),
		Speed:    speed,
	}
}

// Edge is one side of a mirror's polygon.
type Edge struct {
	A, B r2.Vec
}

func (e Edge) Midpoint() r2.Vec {
	return r2.Scale(0.5, r2.Add(e.A, e.B))
}

// NearestEdge finds the mirror edge closest to the contact point by
// point-to-segment distance. When the contact is exactly equidistant from
// two edges (only possible at a vertex) the first edge in winding order
// wins; this tie-break is arbitrary but stable, and is left as is.
func NearestEdge(contact r2.Vec, m Mirror) (Edge, int) {
	vs := m.Vertices()
	bestIdx := 0
	bestDist := math.Inf(1)
	for i := range vs {
		a, b := vs[i], vs[(i+1)%len(vs)]
		if d := pointToSegment(contact, a, b); d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return Edge{A: vs[bestIdx], B: vs[(bestIdx+1)%len(vs)]}, bestIdx
}

// outwardNormal returns the unit normal of e on the side facing the contact
// point, disambiguated by the vector from the edge midpoint to the contact.
func outwardNormal(e Edge, contact r2.Vec) r2.Vec {
	d := r2.Unit(r2.Sub(e.B, e.A))
	n := V(-d.Y, d.X)
	if r2.Dot(n, r2.Sub(contact, e.Midpoint())) < 0 {
		n = r2.Scale(-1, n)
	}
	return n
}

// reflectVelocity mirrors v across the plane with unit normal n:
// v' = v - 2(v·n)n.
func reflectVelocity(v, n r2.Vec) r2.Vec {
	return r2.Sub(v, r2.Scale(2*r2.Dot(v, n), n))
}

// snapToAngle rounds the direction of v to the nearest AngleSnapDegrees
// increment, preserving its magnitude.
func snapToAngle(v r2.Vec) r2.Vec {
	speed := r2.Norm(v)
	if speed == 0 {
		return v
	}
	inc := AngleSnapDegrees * math.Pi / 180
	angle := math.Round(math.Atan2(v.Y, v.X)/inc) * inc
	return r2.Scale(speed, V(math.Cos(angle), math.Sin(angle)))
}

// BounceOffMirror reflects the ray off the mirror edge nearest its current
// position. The reflected speed is renormalized to the ray's fixed speed to
// counter floating point drift, the direction is snapped to the angle grid,
// and the ray is nudged forward so it clears the contact.
func (r *Ray) BounceOffMirror(m Mirror, gridSize float64) {
	edge, _ := NearestEdge(r.Position, m)
	n := outwardNormal(edge, r.Position)
	v := snapToAngle(reflectVelocity(r.Velocity, n))
	r.Velocity = withSpeed(v, r.Speed)
	r.Position = r2.Add(r.Position, withSpeed(r.Velocity, gridSize*nudgeFraction))
	r.Reflections++
}

// BounceOffWall reflects the ray off whichever arena walls it has crossed.
// If drift has carried the position outside the arena by more than a small
// buffer, it is clamped back inside before the reflection is applied; this
// self-heals tunneling from oversized per-frame steps.
func (r *Ray) BounceOffWall(arena Box, gridSize float64) {
	v := r.Velocity
	if r.Position.X <= arena.Min.X {
		v = reflectVelocity(v, V(1, 0))
	} else if r.Position.X >= arena.Max.X {
		v = reflectVelocity(v, V(-1, 0))
	}
	if r.Position.Y <= arena.Min.Y {
		v = reflectVelocity(v, V(0, 1))
	} else if r.Position.Y >= arena.Max.Y {
		v = reflectVelocity(v, V(0, -1))
	}

	r.Position = clampToArena(r.Position, arena)
	v = snapToAngle(v)
	r.Velocity = withSpeed(v, r.Speed)
	r.Position = r2.Add(r.Position, withSpeed(r.Velocity, gridSize*nudgeFraction))
	r.Reflections++
}

func clampToArena(p r2.Vec, arena Box) r2.Vec {
	if p.X < arena.Min.X-wallBuffer {
		p.X = arena.Min.X
	}
	if p.X > arena.Max.X+wallBuffer {
		p.X = arena.Max.X
	}
	if p.Y < arena.Min.Y-wallBuffer {
		p.Y = arena.Min.Y
	}
	if p.Y > arena.Max.Y+wallBuffer {
		p.Y = arena.Max.Y
	}
	return p
}

// Advance moves the ray along step, sub-stepping whenever the step is longer
// than a tenth of the grid size so thin mirrors cannot be skipped. Each
// sub-step endpoint is tested against every mirror's bounding box before the
// precise polygon test. Returns the index of the first mirror hit, or -1.
func (r *Ray) Advance(step r2.Vec, mirrors []Mirror, gridSize float64) int {
	length := r2.Norm(step)
	maxStep := gridSize * subStepFraction
	n := 1
	if length > maxStep {
		n = int(math.Ceil(length / maxStep))
	}
	sub := r2.Scale(1/float64(n), step)

	bounds := make([]Box, len(mirrors))
	for i, m := range mirrors {
		bounds[i] = m.Bounds()
	}

	for s := 0; s < n; s++ {
		r.Position = r2.Add(r.Position, sub)
		for i, m := range mirrors {
			if !bounds[i].Contains(r.Position) {
				continue
			}
			if m.Contains(r.Position) {
				return i
			}
		}
	}
	return -1
}
