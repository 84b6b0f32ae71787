package hull

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, all comparisons are tolerance
// based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// A common convention in this package is that when two points have nearly
// the same Y value, the one with the smaller X value is treated as lower.
// This simulates a slightly rotated coordinate system, so no two distinct
// points are ever at exactly the same height. The trace starts from the
// minimum point under this ordering.
func (p Point) Below(other Point) bool {
	if Equal(p.Y, other.Y) {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Above(other Point) bool {
	return !p.Below(other)
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Often we want to treat a ring of points as circular. This gives the
// modular index for length n, but unlike the raw modulo operator, it always
// gives positive values.
func CircularIndex(i, n int) int {
	return ((i % n) + n) % n
}

// SignedArea is the shoelace sum of the ring: positive for counterclockwise
// rings, negative for clockwise ones, with the y axis pointing up. The ring
// may be open or explicitly closed; a repeated closing point contributes
// nothing either way.
func SignedArea(ring []Point) float64 {
	var sum float64
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// IsClockwise reports whether the ring winds clockwise with the y axis
// pointing up.
func IsClockwise(ring []Point) bool {
	return SignedArea(ring) < 0
}

func distinctCoords(pts []Point) int {
	seen := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}
