package hull

// Containment classifies a point against a polygon.
type Containment int

const (
	Outside Containment = iota
	OnBoundary
	Inside
)

func (c Containment) String() string {
	switch c {
	case OnBoundary:
		return "OnBoundary"
	case Inside:
		return "Inside"
	}
	return "Outside"
}

// PointInPolygon classifies p against the ring by the crossing number rule.
// The ring may be open or explicitly closed. Points within Tolerance of an
// edge or vertex classify as OnBoundary, so a hull vertex always counts as
// contained even after the float error of a long trace.
func PointInPolygon(p Point, ring []Point) Containment {
	for i, a := range ring {
		b := ring[CircularIndex(i+1, len(ring))]
		if distToSegment(p, a, b) < Tolerance {
			return OnBoundary
		}
	}

	crossings := 0
	for i, a := range ring {
		b := ring[CircularIndex(i+1, len(ring))]
		// Count edges that straddle the horizontal line through p and cross
		// it strictly to the right of p. The half-open straddle test makes an
		// edge chain passing exactly through a vertex height count once, not
		// twice.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// distToSegment is the distance from p to the nearest point of segment ab.
func distToSegment(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dist(p, Point{X: a.X + t*abx, Y: a.Y + t*aby})
}

// allContained reports whether every point of the cloud is inside or on the
// boundary of the ring. A trace that closed too early leaves points outside,
// and the result must be rejected rather than returned.
func allContained(pts []Point, ring []Point) bool {
	for _, p := range pts {
		if PointInPolygon(p, ring) == Outside {
			return false
		}
	}
	return true
}
