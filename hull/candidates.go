package hull

import "sort"

// candidate is one eligible next vertex, scored for ranking.
type candidate struct {
	index int
	turn  float64 // clockwise turn from the previous heading, in [0, 2π)
	dist  float64 // length of the proposed edge
}

// rankCandidates orders the eligible indices by the clockwise turn their
// edge would take from the previous heading: the straightest continuation
// first, a hard counterclockwise turn last. Exact ties rank the shorter edge
// first, then the lower index, so the order is total and a trace over the
// same cloud always reproduces itself. Points coincident with current are
// dropped; a zero-length edge has no heading to rank.
//
// Ranking is pure. Retry policy, radius growth and intersection checks
// belong to the tracer; this function only answers "in what order should the
// tracer try these points".
func rankCandidates(pts []Point, current Point, prevHeading float64, ids []int) []candidate {
	ranked := make([]candidate, 0, len(ids))
	for _, id := range ids {
		d := dist(current, pts[id])
		if d == 0 {
			continue
		}
		ranked = append(ranked, candidate{
			index: id,
			turn:  clockwiseTurn(prevHeading, heading(current, pts[id])),
			dist:  d,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.turn != b.turn {
			return a.turn < b.turn
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.index < b.index
	})
	return ranked
}
