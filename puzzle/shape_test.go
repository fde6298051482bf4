package puzzle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

const grid = 20.0

func almostEqual(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func assertHasVertex(t *testing.T, vs []r2.Vec, want r2.Vec) {
	t.Helper()
	for _, v := range vs {
		if almostEqual(v, want) {
			return
		}
	}
	t.Errorf("vertex (%v, %v) not found in %v", want.X, want.Y, vs)
}

func TestVertices(t *testing.T) {
	tests := []struct {
		name   string
		mirror Mirror
		count  int
		expect []r2.Vec
	}{
		{
			"square", Mirror{Kind: Square, Center: V(100, 100), Width: 40, Height: 40},
			4, []r2.Vec{V(80, 80), V(120, 80), V(120, 120), V(80, 120)},
		},
		{
			"rectangle", Mirror{Kind: Rectangle, Center: V(200, 100), Width: 120, Height: 80},
			4, []r2.Vec{V(140, 60), V(260, 60), V(260, 140), V(140, 140)},
		},
		{
			"right_triangle", Mirror{Kind: RightTriangle, Center: V(100, 100), Width: 60, Height: 60},
			3, []r2.Vec{V(70, 70), V(130, 130), V(70, 130)},
		},
		{
			"isosceles", Mirror{Kind: IsoscelesTriangle, Center: V(100, 100), Width: 80, Height: 40},
			3, []r2.Vec{V(100, 80), V(140, 120), V(60, 120)},
		},
		{
			"trapezoid", Mirror{Kind: Trapezoid, Center: V(100, 100), Width: 80, Height: 40, TopWidth: 40},
			4, []r2.Vec{V(80, 80), V(120, 80), V(140, 120), V(60, 120)},
		},
		{
			"parallelogram", Mirror{Kind: Parallelogram, Center: V(100, 100), Width: 60, Height: 40, Skew: 20},
			4, []r2.Vec{V(90, 80), V(150, 80), V(130, 120), V(70, 120)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vs := test.mirror.Vertices()
			assert.Len(t, vs, test.count)
			for _, want := range test.expect {
				assertHasVertex(t, vs, want)
			}
		})
	}
}

func TestVerticesRotation(t *testing.T) {
	// A 180-degree rotation must flip the isosceles apex across the center.
	m := Mirror{Kind: IsoscelesTriangle, Center: V(100, 100), Width: 80, Height: 40, RotationDegrees: 180}
	assertHasVertex(t, m.Vertices(), V(100, 120))

	// Squares and rectangles ignore rotation entirely.
	sq := Mirror{Kind: Square, Center: V(100, 100), Width: 40, Height: 40, RotationDegrees: 90}
	assertHasVertex(t, sq.Vertices(), V(80, 80))
}

func TestVerticesRecomputed(t *testing.T) {
	// Vertices are derived, never cached: moving the center must move them.
	m := Mirror{Kind: Rectangle, Center: V(200, 100), Width: 120, Height: 80}
	before := m.Vertices()
	m.Center = V(300, 100)
	after := m.Vertices()
	assert.False(t, almostEqual(before[0], after[0]))
	assertHasVertex(t, after, V(240, 60))
}

func TestSurfaceArea(t *testing.T) {
	tests := []struct {
		name   string
		mirror Mirror
		want   float64
	}{
		// 2*(6+4) grid units
		{"rectangle_120x80", Mirror{Kind: Rectangle, Center: V(200, 200), Width: 120, Height: 80}, 20},
		// legs 3+3, hypotenuse round(3*sqrt2)=4
		{"right_triangle_60x60", Mirror{Kind: RightTriangle, Center: V(200, 200), Width: 60, Height: 60}, 10},
		{"square_1x1", Mirror{Kind: Square, Center: V(200, 200), Width: 20, Height: 20}, 4},
		// bottom 4 + top 2 + two slants round(sqrt(1+4))=2 each
		{"trapezoid", Mirror{Kind: Trapezoid, Center: V(200, 200), Width: 80, Height: 40, TopWidth: 40}, 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.want, test.mirror.SurfaceArea(grid), 1e-9)
		})
	}
}

func TestSurfaceAreaRotationInvariant(t *testing.T) {
	for _, rot := range []float64{0, 90, 180, 270} {
		m := Mirror{Kind: RightTriangle, Center: V(200, 200), Width: 60, Height: 80, RotationDegrees: rot}
		assert.InDelta(t, m.SurfaceArea(grid), 10.0, 1e-9, "rotation %v", rot)
	}
}

func TestBounds(t *testing.T) {
	m := Mirror{Kind: Trapezoid, Center: V(100, 100), Width: 80, Height: 40, TopWidth: 40}
	b := m.Bounds()
	assert.InDelta(t, 60.0, b.Min.X, 1e-9)
	assert.InDelta(t, 80.0, b.Min.Y, 1e-9)
	assert.InDelta(t, 140.0, b.Max.X, 1e-9)
	assert.InDelta(t, 120.0, b.Max.Y, 1e-9)
}

func TestContains(t *testing.T) {
	m := Mirror{Kind: RightTriangle, Center: V(100, 100), Width: 60, Height: 60}
	// Right angle is at bottom-left, so the bottom-left half is solid.
	assert.True(t, m.Contains(V(80, 120)))
	assert.False(t, m.Contains(V(125, 75)))
	assert.False(t, m.Contains(V(500, 500)))
}
