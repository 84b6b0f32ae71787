package hull

import "math"

// Segment predicates for the intersection checker. The checker's job is to
// reject any proposed edge that would make the committed boundary
// self-intersecting or self-touching. Consecutive edges legitimately share a
// vertex, so sharing an endpoint *by index* is allowed unless the two edges
// double back over each other. Any other contact is a conflict, including
// grazing a committed vertex whose coordinates happen to repeat at some
// other index.

// orient is the signed area of the parallelogram spanned by pq and pr:
// positive when r is to the left of the line through pq, negative to the
// right, zero when collinear.
func orient(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// onSegment reports whether r lies within the bounding box of pq. Only
// meaningful when p, q and r are already known to be collinear.
func onSegment(p, q, r Point) bool {
	return math.Min(p.X, q.X)-Tolerance <= r.X && r.X <= math.Max(p.X, q.X)+Tolerance &&
		math.Min(p.Y, q.Y)-Tolerance <= r.Y && r.Y <= math.Max(p.Y, q.Y)+Tolerance
}

// segmentsCross reports whether segments p1p2 and q1q2 have any point in
// common. Proper crossings, T-contacts, endpoint contacts and collinear
// overlaps all count.
func segmentsCross(p1, p2, q1, q2 Point) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Degenerate contact: an endpoint of one segment lies on the other.
	if Equal(d1, 0) && onSegment(q1, q2, p1) {
		return true
	}
	if Equal(d2, 0) && onSegment(q1, q2, p2) {
		return true
	}
	if Equal(d3, 0) && onSegment(p1, p2, q1) {
		return true
	}
	if Equal(d4, 0) && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

// collinearOverlap reports whether two edges that share the vertex s double
// back over one another. a is the far endpoint of one edge and b of the
// other; the edges overlap when they are collinear and leave s in the same
// direction.
func collinearOverlap(s, a, b Point) bool {
	if !Equal(orient(s, a, b), 0) {
		return false
	}
	return (a.X-s.X)*(b.X-s.X)+(a.Y-s.Y)*(b.Y-s.Y) > 0
}

// edgesConflict decides whether edge e could not coexist with edge f on a
// simple boundary. Edges sharing both endpoints are the same edge; edges
// sharing one endpoint by index conflict only when they double back; all
// other pairs conflict on any geometric contact.
func edgesConflict(pts []Point, e, f Edge) bool {
	shared := 0
	if e.A == f.A || e.A == f.B {
		shared++
	}
	if e.B == f.A || e.B == f.B {
		shared++
	}

	switch shared {
	case 2:
		return true
	case 1:
		s, a, b := sharedVertex(e, f)
		return collinearOverlap(pts[s], pts[a], pts[b])
	default:
		return segmentsCross(pts[e.A], pts[e.B], pts[f.A], pts[f.B])
	}
}

// sharedVertex splits two edges known to share exactly one endpoint index
// into the shared index and each edge's far endpoint.
func sharedVertex(e, f Edge) (s, eFar, fFar int) {
	switch {
	case e.A == f.A:
		return e.A, e.B, f.B
	case e.A == f.B:
		return e.A, e.B, f.A
	case e.B == f.A:
		return e.B, e.A, f.B
	default: // e.B == f.B
		return e.B, e.A, f.A
	}
}

// crossesCommitted reports whether the proposed edge conflicts with any
// committed edge. Every candidate passes through this gate before being
// committed, which is what keeps the traced boundary simple.
func crossesCommitted(pts []Point, committed []Edge, e Edge) bool {
	for _, f := range committed {
		if edgesConflict(pts, e, f) {
			return true
		}
	}
	return false
}
