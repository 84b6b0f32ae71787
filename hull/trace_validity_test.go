package hull

// This contains no actual tests. It is just a helper for checking that a
// traced boundary is well formed for the cloud it was traced from.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a traced hull is valid. The rules are:
// 1. The ring is explicitly closed: the last index repeats the first.
// 2. Every index refers to a point of the cloud.
// 3. The ring winds clockwise with the y axis pointing up.
// 4. No two non-adjacent edges of the ring touch.
// 5. Every point of the cloud is inside the ring or on its boundary.

func AssertValidHull(t *testing.T, pts []Point, hull []int) {
	require.GreaterOrEqual(t, len(hull), 4, "a closed ring repeats its start and needs at least 3 vertices")
	require.Equal(t, hull[0], hull[len(hull)-1], "ring must end where it began")

	ring := make([]Point, len(hull))
	for i, id := range hull {
		require.GreaterOrEqual(t, id, 0, "negative index in ring")
		require.Less(t, id, len(pts), "ring index beyond the cloud")
		ring[i] = pts[id]
	}

	require.True(t, IsClockwise(ring), "ring winds counterclockwise")

	// The closing index is a duplicate, so the ring has len(hull)-1 edges.
	// Adjacent edges share a vertex legitimately; every other pair must be
	// disjoint, including the first and last, which meet at the start.
	n := len(hull) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			require.False(t, segmentsCross(ring[i], ring[i+1], ring[j], ring[j+1]),
				"ring edges %d and %d touch", i, j)
		}
	}

	for i, p := range pts {
		require.NotEqual(t, Outside, PointInPolygon(p, ring),
			"cloud point %d %v was left outside the ring", i, p)
	}
}
