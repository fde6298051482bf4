package puzzle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind enumerates the supported mirror polygon families.
type Kind int

const (
	Square Kind = iota
	Rectangle
	RightTriangle
	IsoscelesTriangle
	Trapezoid
	Parallelogram
)

var kindNames = map[Kind]string{
	Square:            "square",
	Rectangle:         "rectangle",
	RightTriangle:     "right_triangle",
	IsoscelesTriangle: "isosceles_triangle",
	Trapezoid:         "trapezoid",
	Parallelogram:     "parallelogram",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Rotates reports whether this shape family is ever placed rotated.
// Squares and rectangles are always axis-aligned.
func (k Kind) Rotates() bool {
	return k != Square && k != Rectangle
}

// Mirror is one polygonal reflector. The fields here are canonical; vertices
// are always derived from them via Vertices and never stored separately.
type Mirror struct {
	Kind   Kind
	Center r2.Vec
	// Primary extents in pixels. For Square, Width == Height.
	Width  float64
	Height float64
	// TopWidth is the secondary base width, trapezoids only. Always < Width.
	TopWidth float64
	// Skew is the horizontal shear of the top edge, parallelograms only.
	Skew float64
	// RotationDegrees is one of 0, 90, 180, 270.
	RotationDegrees float64
}

// Vertices returns the mirror's polygon in clockwise order (screen
// coordinates, y down). This is the single source of truth for the mirror's
// geometry; alignment, validation and reflection all consume it.
func (m Mirror) Vertices() []r2.Vec {
	hw := m.Width / 2
	hh := m.Height / 2

	var local []r2.Vec
	switch m.Kind {
	case Square, Rectangle:
		local = []r2.Vec{V(-hw, -hh), V(hw, -hh), V(hw, hh), V(-hw, hh)}
	case RightTriangle:
		// Right angle at bottom-left.
		local = []r2.Vec{V(-hw, -hh), V(hw, hh), V(-hw, hh)}
	case IsoscelesTriangle:
		// Apex on top, base on the bottom edge.
		local = []r2.Vec{V(0, -hh), V(hw, hh), V(-hw, hh)}
	case Trapezoid:
		tw := m.TopWidth / 2
		local = []r2.Vec{V(-tw, -hh), V(tw, -hh), V(hw, hh), V(-hw, hh)}
	case Parallelogram:
		local = []r2.Vec{V(-hw+m.Skew, -hh), V(hw+m.Skew, -hh), V(hw, hh), V(-hw, hh)}
	}

	rad := m.RotationDegrees * math.Pi / 180
	out := make([]r2.Vec, len(local))
	for i, p := range local {
		p = r2.Add(p, m.Center)
		if m.Kind.Rotates() && rad != 0 {
			p = r2.Rotate(p, rad, m.Center)
		}
		out[i] = p
	}
	return out
}

// SurfaceArea is the game's perimeter measure: the sum of edge lengths in
// grid units, with each edge rounded to the nearest whole unit. Rounding
// diagonal edges keeps every total integral, which the exact-sum generator
// relies on.
func (m Mirror) SurfaceArea(gridSize float64) float64 {
	vs := m.Vertices()
	total := 0.0
	for i := range vs {
		total += math.Round(dist(vs[i], vs[(i+1)%len(vs)]) / gridSize)
	}
	return total
}

// Bounds returns the axis-aligned bounding box of the mirror's polygon.
func (m Mirror) Bounds() Box {
	vs := m.Vertices()
	b := Box{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}

// Contains reports whether p lies inside the mirror's polygon.
func (m Mirror) Contains(p r2.Vec) bool {
	return pointInPolygon(p, m.Vertices())
}

// Box is an axis-aligned rectangle.
type Box struct {
	Min, Max r2.Vec
}

func MakeBox(x0, y0, x1, y1 float64) Box {
	return Box{Min: V(x0, y0), Max: V(x1, y1)}
}

func (b Box) Contains(p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

func (b Box) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

func (b Box) Width() float64  { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// LevelGeometry holds the immutable per-level placement constraints.
type LevelGeometry struct {
	// Arena is the playable area in pixels.
	Arena Box
	// GridSize is the lattice spacing in pixels.
	GridSize float64
	// TargetSafeRadius is the exclusion disk around the arena center; no
	// mirror vertex may fall inside it.
	TargetSafeRadius float64
	// WallSafeMargin is the band along each arena edge where mirror
	// vertices may not be placed.
	WallSafeMargin float64
}

// Center returns the arena center, which is also the target position.
func (g LevelGeometry) Center() r2.Vec {
	return g.Arena.Center()
}
