package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeading(t *testing.T) {
	origin := Point{0, 0}
	assert.InDelta(t, 0, heading(origin, Point{1, 0}), Tolerance)
	assert.InDelta(t, math.Pi/2, heading(origin, Point{0, 1}), Tolerance)
	assert.InDelta(t, math.Pi, heading(origin, Point{-1, 0}), Tolerance)
	assert.InDelta(t, -math.Pi/2, heading(origin, Point{0, -1}), Tolerance)
	assert.InDelta(t, math.Pi/4, heading(Point{1, 1}, Point{2, 2}), Tolerance)
}

func TestClockwiseTurn(t *testing.T) {
	// Continuing straight is no turn at all
	assert.InDelta(t, 0, clockwiseTurn(math.Pi/2, math.Pi/2), Tolerance)

	// Heading east, turning south is a quarter clockwise turn
	assert.InDelta(t, math.Pi/2, clockwiseTurn(0, -math.Pi/2), Tolerance)

	// Heading east, turning north is three quarters clockwise
	assert.InDelta(t, 3*math.Pi/2, clockwiseTurn(0, math.Pi/2), Tolerance)

	// A U turn is half a revolution whichever way it is measured
	assert.InDelta(t, math.Pi, clockwiseTurn(0, math.Pi), Tolerance)

	// Wraparound across the atan2 branch cut
	assert.InDelta(t, math.Pi/4, clockwiseTurn(-3*math.Pi/4, math.Pi), Tolerance)

	// Results always land in [0, 2π)
	for _, prev := range []float64{-math.Pi, -1, 0, 1, math.Pi} {
		for _, cand := range []float64{-math.Pi, -2, 0, 2, math.Pi} {
			turn := clockwiseTurn(prev, cand)
			assert.GreaterOrEqual(t, turn, 0.0)
			assert.Less(t, turn, 2*math.Pi)
		}
	}
}
