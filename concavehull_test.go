package concavehull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestCompute(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	ring, err := Compute(points, Infinite)
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}}, ring)
}

func TestComputeIndices(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	indices, err := ComputeIndices(points, Infinite)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0, 3}, indices)
}

func TestComputeErrors(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		ring, err := Compute([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
		assert.Nil(t, ring)
		var insufficient *InsufficientPointsError
		assert.ErrorAs(t, err, &insufficient)
	})

	t.Run("collinear cloud", func(t *testing.T) {
		_, err := Compute([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 1)
		var degenerate *DegenerateInputError
		assert.ErrorAs(t, err, &degenerate)
	})

	t.Run("invalid concavity", func(t *testing.T) {
		_, err := Compute([]Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}, -2)
		var degenerate *DegenerateInputError
		assert.ErrorAs(t, err, &degenerate)
	})
}

func TestInfinite(t *testing.T) {
	assert.True(t, math.IsInf(Infinite, 1))
}
