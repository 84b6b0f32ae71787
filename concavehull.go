// A tunable concave hull package for Go.
//
// This package takes a cloud of 2D points and produces a closed,
// non-self-intersecting polygon that encloses every point of the cloud. A
// single concavity parameter trades tightness against convexity: zero hugs
// the cloud as closely as it can, Infinite reproduces the convex hull, and
// values in between bound how far the boundary may reach for its next vertex
// relative to the local point spacing.
package concavehull

import (
	"math"

	"github.com/osuushi/concavehull/hull"
)

type Point = hull.Point

// Infinite requests the convex hull.
var Infinite = math.Inf(1)

// Error types returned by Compute and ComputeIndices. See the hull package
// for their fields.
type InsufficientPointsError = hull.InsufficientPointsError
type DegenerateInputError = hull.DegenerateInputError
type TraceFailedError = hull.TraceFailedError

// Compute traces the concave hull of the cloud. The result is a closed ring:
// its first point is repeated at the end, and it winds clockwise when the y
// axis points up. Every vertex is one of the input points, and every input
// point is inside or on the returned boundary.
//
// The cloud must contain at least three distinct, finite, non-collinear
// points.
func Compute(points []Point, concavity float64) (result []Point, err error) {
	defer func() {
		recoveredErr := hull.HandleTracePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	indices, err := hull.Trace(points, concavity)
	if err != nil {
		return nil, err
	}
	result = make([]Point, len(indices))
	for i, id := range indices {
		result[i] = points[id]
	}
	return result, nil
}

// ComputeIndices is Compute returning indices into the input slice instead
// of coordinates. Useful when points carry identity beyond their position,
// such as rows in a table.
func ComputeIndices(points []Point, concavity float64) (result []int, err error) {
	defer func() {
		recoveredErr := hull.HandleTracePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return hull.Trace(points, concavity)
}
