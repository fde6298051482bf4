package puzzle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNearestEdge(t *testing.T) {
	m := Mirror{Kind: Rectangle, Center: V(100, 100), Width: 80, Height: 40}
	tests := []struct {
		name    string
		contact r2.Vec
		idx     int
	}{
		{"top", V(100, 81), 0},
		{"right", V(139, 100), 1},
		{"bottom", V(100, 119), 2},
		{"left", V(61, 100), 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, idx := NearestEdge(test.contact, m)
			assert.Equal(t, test.idx, idx)
		})
	}
}

func TestNearestEdgeTieBreak(t *testing.T) {
	// The exact corner is equidistant from two edges; the first in winding
	// order must win, consistently.
	m := Mirror{Kind: Rectangle, Center: V(100, 100), Width: 80, Height: 40}
	_, first := NearestEdge(V(140, 80), m)
	_, second := NearestEdge(V(140, 80), m)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, first)
}

func TestReflectVelocity(t *testing.T) {
	// Downward ray off a horizontal surface comes straight back up.
	v := reflectVelocity(V(0, 5), V(0, -1))
	assert.InDelta(t, 0.0, v.X, 1e-9)
	assert.InDelta(t, -5.0, v.Y, 1e-9)

	// Oblique incidence: the tangential component survives, the normal
	// component flips.
	v = reflectVelocity(V(3, 4), V(0, -1))
	assert.InDelta(t, 3.0, v.X, 1e-9)
	assert.InDelta(t, -4.0, v.Y, 1e-9)
}

func TestSnapToAngle(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    float64
	}{
		{"already_snapped", 45, 45},
		{"rounds_down", 47, 45},
		{"rounds_up", 53, 60},
		{"negative", -37, -30},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rad := test.degrees * math.Pi / 180
			v := snapToAngle(r2.Scale(5, V(math.Cos(rad), math.Sin(rad))))
			got := math.Atan2(v.Y, v.X) * 180 / math.Pi
			assert.InDelta(t, test.want, got, 1e-9)
			assert.InDelta(t, 5.0, r2.Norm(v), 1e-9)
		})
	}
}

func TestBounceOffMirror(t *testing.T) {
	m := Mirror{Kind: Rectangle, Center: V(100, 140), Width: 80, Height: 40}
	ray := NewRay(V(100, 119), V(0, 1), 5)
	ray.BounceOffMirror(m, grid)

	// Straight down onto the top edge reflects straight up; 90 degrees is
	// already on the angle grid so the snap is a no-op.
	assert.InDelta(t, 0.0, ray.Velocity.X, 1e-9)
	assert.InDelta(t, -5.0, ray.Velocity.Y, 1e-9)
	assert.Equal(t, 1, ray.Reflections)
	// Nudged along the new direction, clear of the contact.
	assert.Less(t, ray.Position.Y, 119.0)
}

func TestBounceOffMirrorClearsPenetration(t *testing.T) {
	// A sampled contact can sit up to one sub-step (2px at grid 20) inside
	// the polygon. The bounce must carry the ray back outside so the next
	// advance cannot re-trigger the same contact.
	m := Mirror{Kind: Rectangle, Center: V(100, 140), Width: 80, Height: 40}
	ray := NewRay(V(100, 121.8), V(0, 1), 5)
	ray.BounceOffMirror(m, grid)

	assert.False(t, m.Contains(ray.Position))
	assert.Equal(t, -1, ray.Advance(ray.Velocity, []Mirror{m}, grid))
	assert.Equal(t, 1, ray.Reflections)
}

func TestBounceOffMirrorPreservesSpeed(t *testing.T) {
	m := Mirror{Kind: RightTriangle, Center: V(100, 100), Width: 60, Height: 60}
	ray := NewRay(V(95, 94), V(1, 1), 5)
	ray.BounceOffMirror(m, grid)
	assert.InDelta(t, 5.0, r2.Norm(ray.Velocity), 1e-9)
}

func TestBounceOffWall(t *testing.T) {
	arena := MakeBox(0, 0, 800, 800)
	ray := NewRay(V(800.5, 400), V(5, 0), 5)
	ray.BounceOffWall(arena, grid)

	assert.Negative(t, ray.Velocity.X)
	assert.InDelta(t, 5.0, r2.Norm(ray.Velocity), 1e-9)
	assert.Equal(t, 1, ray.Reflections)
}

func TestBounceOffWallClampsDrift(t *testing.T) {
	// Positions beyond the buffer get pulled back to the wall before the
	// reflection, instead of bouncing around outside the arena.
	arena := MakeBox(0, 0, 800, 800)
	ray := NewRay(V(810, 400), V(5, 0), 5)
	ray.BounceOffWall(arena, grid)
	assert.LessOrEqual(t, ray.Position.X, 800.0)
}

func TestBounceOffWallCorner(t *testing.T) {
	// Crossing both walls at once flips both components.
	arena := MakeBox(0, 0, 800, 800)
	rad := 45 * math.Pi / 180
	ray := NewRay(V(800.5, 800.5), V(math.Cos(rad), math.Sin(rad)), 5)
	ray.BounceOffWall(arena, grid)
	assert.Negative(t, ray.Velocity.X)
	assert.Negative(t, ray.Velocity.Y)
}

func TestAdvanceSubSteps(t *testing.T) {
	// One full velocity step would jump clean over this 1x1 square; the
	// sub-stepping must still register the hit.
	m := Mirror{Kind: Square, Center: V(110, 100), Width: 20, Height: 20}
	ray := NewRay(V(80, 100), V(1, 0), 5)
	hit := -1
	for i := 0; i < 20 && hit < 0; i++ {
		hit = ray.Advance(ray.Velocity, []Mirror{m}, grid)
	}
	assert.Equal(t, 0, hit)
}

func TestAdvanceMiss(t *testing.T) {
	m := Mirror{Kind: Square, Center: V(110, 100), Width: 20, Height: 20}
	ray := NewRay(V(80, 200), V(1, 0), 5)
	for i := 0; i < 20; i++ {
		assert.Equal(t, -1, ray.Advance(ray.Velocity, []Mirror{m}, grid))
	}
}

func TestTraceDirectHit(t *testing.T) {
	geom := LevelGeometry{
		Arena:            MakeBox(0, 0, 800, 800),
		GridSize:         grid,
		TargetSafeRadius: 100,
		WallSafeMargin:   40,
	}
	ray := NewRay(V(40, 400), V(1, 0), 5)
	arrival := Trace(ray, nil, geom, TraceParams{MaxReflections: 40, MaxDistance: 50_000, TargetRadius: 15})

	require.NotEqual(t, INF, arrival.Distance)
	assert.Equal(t, 0, arrival.Reflections)
	assert.InDelta(t, 400.0, arrival.HitPosition.Y, 1e-9)
	assert.InDelta(t, dist(V(40, 400), arrival.HitPosition), arrival.Distance, 1e-6)
	// Spawn and hit bracket the path.
	require.GreaterOrEqual(t, len(arrival.PathPoints), 2)
	assert.Equal(t, V(40, 400), arrival.PathPoints[0])
}

func TestTraceBudgetExhausted(t *testing.T) {
	geom := LevelGeometry{
		Arena:            MakeBox(0, 0, 800, 800),
		GridSize:         grid,
		TargetSafeRadius: 100,
		WallSafeMargin:   40,
	}
	// Aimed away from the target with almost no distance budget.
	ray := NewRay(V(40, 40), V(-1, -1), 5)
	arrival := Trace(ray, nil, geom, TraceParams{MaxReflections: 2, MaxDistance: 100, TargetRadius: 15})
	assert.Equal(t, INF, arrival.Distance)
}

func TestTraceOffMirror(t *testing.T) {
	geom := LevelGeometry{
		Arena:            MakeBox(0, 0, 800, 800),
		GridSize:         grid,
		TargetSafeRadius: 100,
		WallSafeMargin:   40,
	}
	// A wall of mirror across the ray's path forces at least one bounce
	// before anything else can happen.
	m := Mirror{Kind: Rectangle, Center: V(200, 400), Width: 40, Height: 200}
	ray := NewRay(V(40, 400), V(1, 0), 5)
	arrival := Trace(ray, []Mirror{m}, geom, TraceParams{MaxReflections: 40, MaxDistance: 50_000, TargetRadius: 15})

	if arrival.Distance != INF {
		assert.Positive(t, arrival.Reflections)
	}
}
