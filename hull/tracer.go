package hull

import (
	"fmt"
	"math"
)

// The trace is a radius-restricted gift wrap. From the current vertex, only
// points within a concavity-scaled radius are candidates, ranked by smallest
// clockwise turn from the previous heading. A small radius forces the walk
// to hug the cloud; an infinite one degenerates to plain gift wrapping and
// therefore produces the convex hull.
//
// Two bounded escalation ladders make the walk total. Within a single step,
// no viable candidate doubles the search radius until it covers the whole
// remaining cloud. Across whole walks, a boundary that closed too early and
// left points outside restarts from scratch with the concavity grown, until
// a concavity large enough that the unrestricted walk takes over. The
// unrestricted result is a convex polygon and contains every point by
// construction, so the escalation always terminates.

const (
	// Search radius multiplier applied when no in-range candidate survives
	// the intersection check.
	radiusGrowth = 2

	// Concavity multiplier between containment retries.
	concavityGrowth = 1.5

	// The first ranking needs a previous heading. Negative x is arbitrary
	// but fixed: combined with the smallest-clockwise-turn rule it makes
	// the first edge of every trace deterministic.
	initialHeading = math.Pi
)

// Trace computes the concave hull of the cloud and returns it as indices
// into pts. The ring is explicitly closed, with the first index repeated at
// the end, and winds clockwise when the y axis points up.
//
// concavity tunes how far inward the boundary may bite: 0 is as tight as the
// cloud allows, math.Inf(1) requests the convex hull. Negative or NaN
// concavity is rejected as degenerate.
func Trace(pts []Point, concavity float64) ([]int, error) {
	if err := validate(pts, concavity); err != nil {
		return nil, err
	}

	t := &tracer{pts: pts, grid: NewGrid(pts)}

	if math.IsInf(concavity, 1) {
		return t.convex()
	}

	// At this concavity the very first step's radius already covers the
	// whole cloud, so the walk would be the unrestricted one anyway.
	ceiling := t.grid.Diagonal() / t.grid.MinPositiveGap()

	nu := concavity
	for {
		hull, err := t.attempt(nu)
		if err != nil {
			return nil, err
		}
		if allContained(pts, t.ring(hull)) {
			return t.clockwise(hull), nil
		}

		// The boundary closed too early and left points outside. Throw the
		// whole walk away, restore the active set, and try again with a
		// wider bite limit.
		t.grid.Reset()
		nu = math.Max(nu, 1) * concavityGrowth
		if nu >= ceiling {
			return t.convex()
		}
	}
}

type tracer struct {
	pts  []Point
	grid *Grid
}

// convex runs the unrestricted walk. Its result needs no containment check:
// gift wrapping with every active point in range cannot leave anything
// outside.
func (t *tracer) convex() ([]int, error) {
	hull, err := t.attempt(math.Inf(1))
	if err != nil {
		return nil, err
	}
	return t.clockwise(hull), nil
}

// attempt runs one full walk against the current active set and returns the
// closed hull in walk order.
func (t *tracer) attempt(nu float64) ([]int, error) {
	start := t.lowestPoint()
	hull := []int{start}
	var committed []Edge

	t.grid.Remove(start)
	current := start
	prevHeading := float64(initialHeading)

	for {
		next, err := t.nextVertex(nu, hull, committed, current, prevHeading, start)
		if err != nil {
			return nil, err
		}
		committed = append(committed, Edge{A: current, B: next})
		hull = append(hull, next)
		if next == start {
			return hull, nil
		}
		t.grid.Remove(next)
		prevHeading = heading(t.pts[current], t.pts[next])
		current = next
	}
}

// nextVertex runs one extension step: compute the base radius from the
// nearest active point, rank the candidates inside it, and widen the radius
// until some candidate's edge survives the intersection check. Returning the
// start index means the hull closed.
func (t *tracer) nextVertex(nu float64, hull []int, committed []Edge, current int, prevHeading float64, start int) (int, error) {
	cur := t.pts[current]

	nearest, ok := t.grid.NearestBeyond(cur, 0)
	if !ok {
		// Nothing is left at a positive distance. With three vertices down
		// the ring may still close; otherwise every remaining point
		// coincides with the current vertex and no heading can be ranked.
		if len(hull) >= 3 {
			closing := Edge{A: current, B: start}
			if !crossesCommitted(t.pts, committed, closing) {
				return start, nil
			}
			return 0, &TraceFailedError{
				Vertex:    current,
				Committed: len(hull),
				Remaining: t.grid.Remaining(),
			}
		}
		return 0, &DegenerateInputError{
			Reason:    "every remaining point coincides with the current vertex",
			Vertex:    current,
			Remaining: t.grid.Remaining(),
		}
	}

	// Base radius: concavity times the nearest gap, but never less than the
	// gap itself, so concavity zero still sees its nearest candidate.
	radius := math.Max(nu*nearest.Dist, nearest.Dist)
	for {
		ids := t.grid.WithinRadius(cur, radius)
		// The start point was consumed when the walk began, but it becomes
		// a legal target again once a closing edge is geometrically
		// possible.
		if len(hull) >= 3 && dist(cur, t.pts[start]) <= radius {
			ids = append(ids, start)
		}

		for _, c := range rankCandidates(t.pts, cur, prevHeading, ids) {
			e := Edge{A: current, B: c.index}
			if !crossesCommitted(t.pts, committed, e) {
				return c.index, nil
			}
		}

		if radius >= t.grid.Diagonal() {
			return 0, &TraceFailedError{
				Vertex:    current,
				Committed: len(hull),
				Remaining: t.grid.Remaining(),
			}
		}
		radius *= radiusGrowth
	}
}

// lowestPoint picks the starting vertex: lowest y, ties broken toward lowest
// x (see Point.Below). Nothing can be below it, so it lies on every hull,
// convex or concave.
func (t *tracer) lowestPoint() int {
	low := 0
	for i := 1; i < len(t.pts); i++ {
		if t.pts[i].Below(t.pts[low]) {
			low = i
		}
	}
	return low
}

// ring materializes hull indices as coordinates.
func (t *tracer) ring(hull []int) []Point {
	ring := make([]Point, len(hull))
	for i, id := range hull {
		ring[i] = t.pts[id]
	}
	return ring
}

// clockwise reverses the ring in place if the walk came out
// counterclockwise. The greedy turn rule makes each walk deterministic, but
// which way it winds depends on where the radius restriction lets it go
// first, so orientation is normalized rather than assumed.
func (t *tracer) clockwise(hull []int) []int {
	if !IsClockwise(t.ring(hull)) {
		for i, j := 0, len(hull)-1; i < j; i, j = i+1, j-1 {
			hull[i], hull[j] = hull[j], hull[i]
		}
	}
	return hull
}

func validate(pts []Point, concavity float64) error {
	if math.IsNaN(concavity) || concavity < 0 {
		return &DegenerateInputError{
			Reason:    fmt.Sprintf("concavity must be non-negative, got %v", concavity),
			Vertex:    -1,
			Remaining: len(pts),
		}
	}
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return &DegenerateInputError{
				Reason:    fmt.Sprintf("non-finite coordinate (%v, %v) at index %d", p.X, p.Y, i),
				Vertex:    -1,
				Remaining: len(pts),
			}
		}
	}
	if distinct := distinctCoords(pts); len(pts) < 3 || distinct < 3 {
		return &InsufficientPointsError{Count: len(pts), Distinct: distinct}
	}
	if collinearCloud(pts) {
		return &DegenerateInputError{
			Reason:    "all points are collinear",
			Vertex:    -1,
			Remaining: len(pts),
		}
	}
	return nil
}

// collinearCloud reports whether every point lies on a single line. Such a
// cloud has no interior and no walk over it can ever close a ring.
func collinearCloud(pts []Point) bool {
	a := pts[0]
	b := a
	for _, p := range pts[1:] {
		if p != a {
			b = p
			break
		}
	}
	if b == a {
		return true
	}
	for _, p := range pts {
		if !Equal(orient(a, b, p), 0) {
			return false
		}
	}
	return true
}
