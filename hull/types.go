package hull

// A point in the cloud. Identity is positional: a point is referred to by
// its index into the input slice, so exact duplicate coordinates are
// distinct points until the trace naturally passes one of them by. Point
// values are never modified; some applications require exact coordinate
// equality and we cannot tolerate loss of precision.
type Point struct {
	X float64
	Y float64
}

// Edge is an ordered pair of indices into the point cloud. Committed hull
// edges keep indices rather than coordinates so that duplicate coordinates
// stay distinguishable.
type Edge struct {
	A, B int
}

// Neighbor is a grid query result: an active point index and its distance
// from the query point.
type Neighbor struct {
	Index int
	Dist  float64
}
