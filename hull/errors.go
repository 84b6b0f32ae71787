package hull

import "fmt"

// A trace fails in exactly three ways, and all three are ordinary error
// returns. Radius growth and concavity retries are internal control flow,
// never errors; a caller who gets an error can conclude that no amount of
// retrying would have produced a hull.

// InsufficientPointsError reports an input with fewer than three points, or
// fewer than three distinct coordinates among them.
type InsufficientPointsError struct {
	Count    int // points supplied
	Distinct int // distinct coordinates among them
}

func (e *InsufficientPointsError) Error() string {
	if e.Count == e.Distinct {
		return fmt.Sprintf("concave hull needs at least 3 points, got %d", e.Count)
	}
	return fmt.Sprintf("concave hull needs at least 3 distinct points, got %d (%d distinct)",
		e.Count, e.Distinct)
}

// DegenerateInputError reports a cloud the tracer cannot walk at all:
// collinear points, non-finite coordinates, an invalid concavity, or a state
// where every remaining candidate coincides with the current vertex so no
// heading can be ranked.
type DegenerateInputError struct {
	Reason    string
	Vertex    int // index of the current hull vertex, or -1 before tracing starts
	Remaining int // active points left when the degeneracy was hit
}

func (e *DegenerateInputError) Error() string {
	if e.Vertex < 0 {
		return fmt.Sprintf("degenerate input: %s", e.Reason)
	}
	return fmt.Sprintf("degenerate input at vertex %d (%d points remaining): %s",
		e.Vertex, e.Remaining, e.Reason)
}

// TraceFailedError reports that no candidate produced a non-intersecting
// edge even after the search radius grew to cover the whole remaining cloud.
type TraceFailedError struct {
	Vertex    int // index of the vertex the trace was extending from
	Committed int // hull vertices committed so far
	Remaining int // active points left
}

func (e *TraceFailedError) Error() string {
	return fmt.Sprintf("hull trace failed at vertex %d: no viable candidate among %d remaining points (%d committed)",
		e.Vertex, e.Remaining, e.Committed)
}
