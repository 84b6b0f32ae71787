package hull

import "github.com/pkg/errors"

// Threading error returns through the grid and ring-scan internals would add
// noise to code that can only fail on programmer error. Internal invariant
// violations panic instead, and the public API recovers the panic into an
// error at its boundary.

type TraceError error

// Panic with a TraceError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleTracePanicRecover converts a recovered fatalf panic back into an
// error. Any other panic value is re-raised. Use it with the result of
// recover() in a deferred function:
//
//	defer func() {
//		if recoveredErr := hull.HandleTracePanicRecover(recover()); recoveredErr != nil {
//			err = recoveredErr
//		}
//	}()
func HandleTracePanicRecover(r interface{}) error {
	if r != nil {
		if traceError, ok := r.(TraceError); ok {
			return traceError
		}
		panic(r)
	}
	return nil
}
