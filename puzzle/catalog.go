package puzzle

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// CatalogEntry is one legal (shape, dimensions, rotation) combination with
// its precomputed surface area. Dimensions are in pixels.
type CatalogEntry struct {
	Kind            Kind
	Width           float64
	Height          float64
	TopWidth        float64
	Skew            float64
	RotationDegrees float64
	// Area is the entry's surface area in grid units. Always integral
	// because edge lengths are rounded per SurfaceArea.
	Area int
}

// Mirror instantiates the entry at the given center.
func (e CatalogEntry) Mirror(center r2.Vec) Mirror {
	return Mirror{
		Kind:            e.Kind,
		Center:          center,
		Width:           e.Width,
		Height:          e.Height,
		TopWidth:        e.TopWidth,
		Skew:            e.Skew,
		RotationDegrees: e.RotationDegrees,
	}
}

// Catalog is the full menu of placeable mirror configurations indexed by
// surface area. It is immutable once built; compute it at startup and pass
// it to the generator explicitly.
type Catalog struct {
	grid    float64
	entries []CatalogEntry
	byArea  map[int][]CatalogEntry
	areas   []int
}

// Size menus, in grid units. Isosceles widths are even only: the apex sits
// on the center's vertical, so odd widths can never put all three vertices
// on lattice at once. Trapezoid top and bottom widths share parity for the
// same reason.
var (
	squareSides    = []int{1, 2, 3, 4, 5}
	rectSides      = []int{1, 2, 3, 4, 5, 6}
	triangleLegs   = []int{1, 2, 3, 4, 5}
	isoscelesWidth = []int{2, 4, 6}
	isoscelesDepth = []int{1, 2, 3, 4}
	trapezoidWidth = []int{3, 4, 5, 6}
	trapezoidDepth = []int{1, 2, 3}
	paraWidth      = []int{2, 3, 4, 5}
	paraDepth      = []int{1, 2, 3}
	paraSkew       = []int{1, 2}

	rotations = []float64{0, 90, 180, 270}
)

// BuildCatalog enumerates every legal configuration for the given geometry.
func BuildCatalog(geom LevelGeometry) *Catalog {
	c := &Catalog{
		grid:   geom.GridSize,
		byArea: map[int][]CatalogEntry{},
	}
	g := geom.GridSize

	for _, s := range squareSides {
		c.add(CatalogEntry{Kind: Square, Width: float64(s) * g, Height: float64(s) * g})
	}
	for _, w := range rectSides {
		for _, h := range rectSides {
			if w == h {
				continue
			}
			c.add(CatalogEntry{Kind: Rectangle, Width: float64(w) * g, Height: float64(h) * g})
		}
	}
	for _, rot := range rotations {
		for _, w := range triangleLegs {
			for _, h := range triangleLegs {
				c.add(CatalogEntry{Kind: RightTriangle, Width: float64(w) * g, Height: float64(h) * g, RotationDegrees: rot})
			}
		}
		for _, w := range isoscelesWidth {
			for _, h := range isoscelesDepth {
				c.add(CatalogEntry{Kind: IsoscelesTriangle, Width: float64(w) * g, Height: float64(h) * g, RotationDegrees: rot})
			}
		}
		for _, w := range trapezoidWidth {
			for tw := w % 2; tw < w; tw += 2 {
				if tw < 1 {
					continue
				}
				for _, h := range trapezoidDepth {
					c.add(CatalogEntry{
						Kind: Trapezoid, Width: float64(w) * g, Height: float64(h) * g,
						TopWidth: float64(tw) * g, RotationDegrees: rot,
					})
				}
			}
		}
		for _, w := range paraWidth {
			for _, h := range paraDepth {
				for _, skew := range paraSkew {
					if skew >= w {
						continue
					}
					c.add(CatalogEntry{
						Kind: Parallelogram, Width: float64(w) * g, Height: float64(h) * g,
						Skew: float64(skew) * g, RotationDegrees: rot,
					})
				}
			}
		}
	}

	for area := range c.byArea {
		c.areas = append(c.areas, area)
	}
	sort.Ints(c.areas)
	return c
}

func (c *Catalog) add(e CatalogEntry) {
	e.Area = int(e.Mirror(V(0, 0)).SurfaceArea(c.grid))
	c.entries = append(c.entries, e)
	c.byArea[e.Area] = append(c.byArea[e.Area], e)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) MinArea() int {
	return c.areas[0]
}

func (c *Catalog) MaxArea() int {
	return c.areas[len(c.areas)-1]
}

// WithArea returns every entry whose surface area equals area exactly.
func (c *Catalog) WithArea(area int) []CatalogEntry {
	return c.byArea[area]
}

// RandomAtMost picks uniformly among entries with area <= max.
func (c *Catalog) RandomAtMost(rng *rand.Rand, max int) (CatalogEntry, bool) {
	var candidates []CatalogEntry
	for _, e := range c.entries {
		if e.Area <= max {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return CatalogEntry{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// LargestAtMost returns a random entry of the largest area <= max.
func (c *Catalog) LargestAtMost(rng *rand.Rand, max int) (CatalogEntry, bool) {
	for i := len(c.areas) - 1; i >= 0; i-- {
		if c.areas[i] <= max {
			entries := c.byArea[c.areas[i]]
			return entries[rng.Intn(len(entries))], true
		}
	}
	return CatalogEntry{}, false
}

// PairSumming searches for two entries whose areas add up to sum exactly.
func (c *Catalog) PairSumming(rng *rand.Rand, sum int) (CatalogEntry, CatalogEntry, bool) {
	for _, a := range c.areas {
		if a > sum-c.MinArea() {
			break
		}
		rest := c.byArea[sum-a]
		if len(rest) == 0 {
			continue
		}
		first := c.byArea[a]
		return first[rng.Intn(len(first))], rest[rng.Intn(len(rest))], true
	}
	return CatalogEntry{}, CatalogEntry{}, false
}
