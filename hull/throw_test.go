package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The grid and tracer internals report broken invariants by panicking
// through fatalf, and the public API converts those panics back into plain
// errors at its boundary. Anything else escaping a trace keeps unwinding.

func TestHandleTracePanicRecover(t *testing.T) {
	guarded := func(fn func()) (err error) {
		defer func() {
			if recovered := HandleTracePanicRecover(recover()); recovered != nil {
				err = recovered
			}
		}()
		fn()
		return nil
	}

	t.Run("grid misuse surfaces as an error", func(t *testing.T) {
		g := NewGrid([]Point{{0, 0}, {3, 0}, {0, 4}})
		err := guarded(func() { g.WithinRadius(Point{0, 0}, -1) })
		assert.EqualError(t, err, "invalid query radius -1")
	})

	t.Run("fatalf formats its arguments", func(t *testing.T) {
		err := guarded(func() { fatalf("vertex %d has no committed edge", 7) })
		assert.EqualError(t, err, "vertex 7 has no committed edge")
	})

	t.Run("foreign panic keeps unwinding", func(t *testing.T) {
		assert.PanicsWithValue(t, "unrelated breakage", func() {
			guarded(func() { panic("unrelated breakage") })
		})
	})

	t.Run("clean call", func(t *testing.T) {
		assert.NoError(t, guarded(func() {}))
	})
}
