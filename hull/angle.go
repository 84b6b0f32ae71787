package hull

import "math"

// Directions of travel are radian headings as returned by math.Atan2, and
// turns are clockwise rotations in [0, 2π). The trace walks the boundary by
// always taking the smallest clockwise turn available, which is what makes
// a radius-restricted walk hug the cloud instead of ballooning out to the
// convex hull.

// heading is the direction of travel from p to q. It is meaningless when the
// points coincide, so callers must reject zero-length edges first.
func heading(p, q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// clockwiseTurn measures the clockwise rotation that takes the previous
// heading onto the candidate heading. Zero means the candidate continues
// straight ahead; values just under 2π mean a hard counterclockwise turn.
func clockwiseTurn(prev, candidate float64) float64 {
	turn := math.Mod(prev-candidate, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	return turn
}
