package puzzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RuleResult is the outcome of one validation rule.
type RuleResult struct {
	OK     bool
	Detail string
}

func pass() RuleResult {
	return RuleResult{OK: true}
}

func fail(format string, args ...any) RuleResult {
	return RuleResult{OK: false, Detail: fmt.Sprintf(format, args...)}
}

// ValidationResult reports the three placement rules independently so the
// generator can see which one rejected a candidate. Valid is true only when
// all three pass.
type ValidationResult struct {
	Valid     bool
	Alignment RuleResult
	Zone      RuleResult
	Shape     RuleResult
}

// Validate runs the full three-rule acceptance test on a candidate mirror
// against the rest of the scene. The rules are evaluated independently, not
// short-circuited.
func Validate(m Mirror, others []Mirror, geom LevelGeometry) ValidationResult {
	r := ValidationResult{
		Alignment: validateAlignment(m, geom),
		Zone:      validateZone(m, others, geom),
		Shape:     validateShape(m, geom),
	}
	r.Valid = r.Alignment.OK && r.Zone.OK && r.Shape.OK
	return r
}

// validateAlignment recomputes the vertices and asserts every one sits on a
// lattice intersection. Failing this is always a hard reject.
func validateAlignment(m Mirror, geom LevelGeometry) RuleResult {
	for i, v := range m.Vertices() {
		if !onGrid(v.X, geom.GridSize) || !onGrid(v.Y, geom.GridSize) {
			return fail("vertex %d at (%.3f, %.3f) is off grid", i, v.X, v.Y)
		}
	}
	return pass()
}

// validateZone checks the exclusion disk, the wall margin band, and overlap
// against every other mirror.
func validateZone(m Mirror, others []Mirror, geom LevelGeometry) RuleResult {
	center := geom.Center()
	inner := geom.Arena
	inner.Min = r2.Add(inner.Min, V(geom.WallSafeMargin, geom.WallSafeMargin))
	inner.Max = r2.Sub(inner.Max, V(geom.WallSafeMargin, geom.WallSafeMargin))

	vs := m.Vertices()
	for i, v := range vs {
		if dist(v, center) < geom.TargetSafeRadius {
			return fail("vertex %d at (%.1f, %.1f) intrudes on the exclusion disk", i, v.X, v.Y)
		}
		if !inner.Contains(v) {
			return fail("vertex %d at (%.1f, %.1f) is inside the wall margin", i, v.X, v.Y)
		}
	}

	for i, o := range others {
		if !m.Bounds().Overlaps(o.Bounds()) {
			continue
		}
		if polygonsIntersect(vs, o.Vertices()) {
			return fail("polygon overlaps mirror %d (%s)", i, o.Kind)
		}
	}
	return pass()
}

// validateShape rejects degenerate geometry per shape family.
func validateShape(m Mirror, geom LevelGeometry) RuleResult {
	if m.Width <= 0 || m.Height <= 0 {
		return fail("non-positive extents %gx%g", m.Width, m.Height)
	}
	if !m.Kind.Rotates() && m.RotationDegrees != 0 {
		return fail("%s must not rotate", m.Kind)
	}
	if rot := m.RotationDegrees; rot != 0 && rot != 90 && rot != 180 && rot != 270 {
		return fail("illegal rotation %g", rot)
	}

	switch m.Kind {
	case Square:
		if m.Width != m.Height {
			return fail("square with unequal sides %gx%g", m.Width, m.Height)
		}
	case Trapezoid:
		if m.TopWidth >= m.Width {
			return fail("trapezoid top width %g must be strictly less than bottom width %g", m.TopWidth, m.Width)
		}
		if m.TopWidth < geom.GridSize-AlignTolerance {
			return fail("trapezoid top width %g is under one grid unit", m.TopWidth)
		}
	case Parallelogram:
		if m.Skew == 0 {
			return fail("parallelogram with zero skew is a rectangle")
		}
		if math.Abs(m.Skew) >= m.Width {
			return fail("parallelogram skew %g exceeds width %g", m.Skew, m.Width)
		}
	}
	return pass()
}
