package puzzle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// V is a shorthand constructor for r2.Vec
func V(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

func dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// withSpeed rescales v to the given magnitude.
func withSpeed(v r2.Vec, speed float64) r2.Vec {
	return r2.Scale(speed, r2.Unit(v))
}

// pointToSegment returns the distance from p to segment ab, clamped at the
// segment ends.
func pointToSegment(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	length2 := r2.Norm2(ab)
	if length2 == 0 {
		return dist(p, a)
	}
	t := r2.Dot(r2.Sub(p, a), ab) / length2
	t = math.Max(0, math.Min(1, t))
	return dist(p, r2.Add(a, r2.Scale(t, ab)))
}

func cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// segmentsIntersect reports whether segments p1p2 and q1q2 cross or touch.
func segmentsIntersect(p1, p2, q1, q2 r2.Vec) bool {
	d1 := cross(r2.Sub(q2, q1), r2.Sub(p1, q1))
	d2 := cross(r2.Sub(q2, q1), r2.Sub(p2, q1))
	d3 := cross(r2.Sub(p2, p1), r2.Sub(q1, p1))
	d4 := cross(r2.Sub(p2, p1), r2.Sub(q2, p1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

// onSegment assumes p is collinear with ab and reports whether it lies
// between them.
func onSegment(a, b, p r2.Vec) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// pointInPolygon runs an even-odd crossing test.
func pointInPolygon(p r2.Vec, polygon []r2.Vec) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// polygonsIntersect reports whether two polygons overlap, either by edge
// crossing or full containment of one inside the other.
func polygonsIntersect(a, b []r2.Vec) bool {
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if segmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	if pointInPolygon(a[0], b) || pointInPolygon(b[0], a) {
		return true
	}
	return false
}
