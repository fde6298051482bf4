package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultGeometry() LevelGeometry {
	return LevelGeometry{
		Arena:            MakeBox(0, 0, 800, 800),
		GridSize:         grid,
		TargetSafeRadius: 100,
		WallSafeMargin:   40,
	}
}

func TestValidateAccepts(t *testing.T) {
	geom := defaultGeometry()
	m := Mirror{Kind: Rectangle, Center: V(200, 200), Width: 80, Height: 40}
	r := Validate(m, nil, geom)
	assert.True(t, r.Valid)
	assert.True(t, r.Alignment.OK)
	assert.True(t, r.Zone.OK)
	assert.True(t, r.Shape.OK)
}

func TestValidateAlignmentRule(t *testing.T) {
	geom := defaultGeometry()
	// Off-grid center, otherwise fine: only rule 1 may fire.
	m := Mirror{Kind: Rectangle, Center: V(210, 200), Width: 80, Height: 40}
	r := Validate(m, nil, geom)
	assert.False(t, r.Valid)
	assert.False(t, r.Alignment.OK)
	assert.True(t, r.Zone.OK)
	assert.True(t, r.Shape.OK)
	assert.NotEmpty(t, r.Alignment.Detail)
}

func TestValidateZoneRule(t *testing.T) {
	geom := defaultGeometry()
	tests := []struct {
		name   string
		mirror Mirror
	}{
		// Nearest vertex is ~72px from the target, inside the 100px disk.
		{"exclusion_disk", Mirror{Kind: Rectangle, Center: V(400, 320), Width: 80, Height: 40}},
		// Left vertices sit at x=20, inside the 40px wall margin.
		{"wall_margin", Mirror{Kind: Rectangle, Center: V(60, 200), Width: 80, Height: 40}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := Validate(test.mirror, nil, geom)
			assert.False(t, r.Valid)
			assert.True(t, r.Alignment.OK)
			assert.False(t, r.Zone.OK)
			assert.True(t, r.Shape.OK)
		})
	}
}

func TestValidateZoneOverlap(t *testing.T) {
	geom := defaultGeometry()
	placed := Mirror{Kind: Rectangle, Center: V(200, 200), Width: 80, Height: 40}
	m := Mirror{Kind: Square, Center: V(220, 200), Width: 40, Height: 40}
	r := Validate(m, []Mirror{placed}, geom)
	assert.False(t, r.Zone.OK)

	// Same candidate away from the placed mirror is fine.
	m.Center = V(220, 600)
	assert.True(t, Validate(m, []Mirror{placed}, geom).Valid)
}

func TestValidateShapeRule(t *testing.T) {
	geom := defaultGeometry()
	tests := []struct {
		name   string
		mirror Mirror
	}{
		{"square_unequal", Mirror{Kind: Square, Center: V(200, 200), Width: 40, Height: 60}},
		{"square_rotated", Mirror{Kind: Square, Center: V(200, 200), Width: 40, Height: 40, RotationDegrees: 90}},
		{"rotation_off_menu", Mirror{Kind: RightTriangle, Center: V(200, 200), Width: 40, Height: 40, RotationDegrees: 45}},
		{"trapezoid_top_too_wide", Mirror{Kind: Trapezoid, Center: V(200, 200), Width: 80, Height: 40, TopWidth: 80}},
		{"trapezoid_top_under_unit", Mirror{Kind: Trapezoid, Center: V(200, 200), Width: 80, Height: 40, TopWidth: 10}},
		{"parallelogram_zero_skew", Mirror{Kind: Parallelogram, Center: V(200, 200), Width: 80, Height: 40}},
		{"parallelogram_skew_too_big", Mirror{Kind: Parallelogram, Center: V(200, 200), Width: 40, Height: 40, Skew: 60}},
		{"zero_width", Mirror{Kind: Rectangle, Center: V(200, 200), Width: 0, Height: 40}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := Validate(test.mirror, nil, geom)
			assert.False(t, r.Valid)
			assert.False(t, r.Shape.OK)
			assert.NotEmpty(t, r.Shape.Detail)
		})
	}
}

func TestValidateRulesIndependent(t *testing.T) {
	geom := defaultGeometry()
	// Off-grid, inside the exclusion disk, and unequal square sides: every
	// rule must report its own failure rather than stopping at the first.
	m := Mirror{Kind: Square, Center: V(405, 405), Width: 30, Height: 40}
	r := Validate(m, nil, geom)
	assert.False(t, r.Valid)
	assert.False(t, r.Alignment.OK)
	assert.False(t, r.Zone.OK)
	assert.False(t, r.Shape.OK)
}
