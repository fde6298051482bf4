package puzzle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// AlignTolerance is the numeric slack allowed when deciding whether a
// coordinate sits on a lattice intersection.
const AlignTolerance = 1e-6

func snapToGrid(x, grid float64) float64 {
	return math.Round(x/grid) * grid
}

func onGrid(x, grid float64) bool {
	return math.Abs(x-snapToGrid(x, grid)) <= AlignTolerance
}

// vertexGridError is the total distance from each vertex to its nearest
// lattice intersection. Zero means the mirror is fully aligned.
func vertexGridError(m Mirror, grid float64) float64 {
	total := 0.0
	for _, v := range m.Vertices() {
		total += math.Hypot(v.X-snapToGrid(v.X, grid), v.Y-snapToGrid(v.Y, grid))
	}
	return total
}

// Aligned reports whether every vertex of m lies on a lattice intersection
// within tolerance.
func Aligned(m Mirror, grid float64) bool {
	for _, v := range m.Vertices() {
		if !onGrid(v.X, grid) || !onGrid(v.Y, grid) {
			return false
		}
	}
	return true
}

// Align nudges the mirror to the nearest configuration whose every vertex
// lies on a lattice intersection. Square and rectangle snap in closed form;
// triangles use a parity rule on their half extents; trapezoid and
// parallelogram fall back to a local search, which is best effort. When the
// search cannot reach a zero-error fit the best candidate is returned along
// with ErrAlignmentInexact, and callers are expected to re-validate.
//
// Align is idempotent: aligning an aligned mirror returns it unchanged.
func Align(m Mirror, grid float64) (Mirror, error) {
	switch m.Kind {
	case Square, Rectangle:
		return alignRect(m, grid), nil
	case RightTriangle, IsoscelesTriangle:
		return alignTriangle(m, grid), nil
	default:
		return alignBySearch(m, grid)
	}
}

// alignRect snaps the left and top edges to their nearest grid lines and
// derives the center from the known extents. Width and height are grid
// multiples, so the opposite edges land on grid automatically.
func alignRect(m Mirror, grid float64) Mirror {
	left := snapToGrid(m.Center.X-m.Width/2, grid)
	top := snapToGrid(m.Center.Y-m.Height/2, grid)
	m.Center = V(left+m.Width/2, top+m.Height/2)
	return m
}

// alignTriangle snaps the center per axis. A triangle's vertices sit at
// half-extent offsets from the center, so when the half extent is itself a
// grid multiple the center must land on an intersection; otherwise it must
// sit halfway between two.
func alignTriangle(m Mirror, grid float64) Mirror {
	hx := m.Width / 2
	hy := m.Height / 2
	if m.RotationDegrees == 90 || m.RotationDegrees == 270 {
		hx, hy = hy, hx
	}
	m.Center = V(snapAxis(m.Center.X, hx, grid), snapAxis(m.Center.Y, hy, grid))
	return m
}

func snapAxis(c, halfExtent, grid float64) float64 {
	if onGrid(halfExtent, grid) {
		return snapToGrid(c, grid)
	}
	return snapToGrid(c-grid/2, grid) + grid/2
}

// alignBySearch handles trapezoids and parallelograms, where four
// independent vertices and two different half widths must land on grid
// simultaneously and no closed form covers the general case. Secondary
// parameters are first snapped to grid multiples, then candidate centers in
// a one-grid-unit window (half-grid steps) are scored by total
// vertex-to-grid error and the best is kept.
func alignBySearch(m Mirror, grid float64) (Mirror, error) {
	if m.Kind == Trapezoid {
		m.TopWidth = math.Max(grid, snapToGrid(m.TopWidth, grid))
	}
	if m.Kind == Parallelogram {
		m.Skew = snapToGrid(m.Skew, grid)
	}

	// Candidates are anchored to the nearest lattice intersection, not to
	// the raw center: half-grid offsets around it cover every parity the
	// shape menu can produce.
	base := V(snapToGrid(m.Center.X, grid), snapToGrid(m.Center.Y, grid))
	best := m
	bestErr := vertexGridError(m, grid)
	for _, dx := range searchOffsets(grid) {
		for _, dy := range searchOffsets(grid) {
			candidate := m
			candidate.Center = r2.Add(base, V(dx, dy))
			if err := vertexGridError(candidate, grid); err < bestErr-AlignTolerance {
				best = candidate
				bestErr = err
			}
		}
	}
	if bestErr > AlignTolerance {
		return best, ErrAlignmentInexact
	}
	return best, nil
}

func searchOffsets(grid float64) []float64 {
	return []float64{0, grid / 2, -grid / 2, grid, -grid}
}
