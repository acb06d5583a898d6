package decorate

import "sync"

// latch is the private state of one Once/OnceErr wrapper.
type latch[R any] struct {
	mu     sync.Mutex
	fired  bool
	result R
}

// Once returns a function that calls fn on its first invocation and returns
// that first result from every later invocation, whatever argument it is
// given.
//
// Concurrent first calls block until the winning call completes. If fn
// panics the latch stays unfired and the panic reaches the caller, so the
// next call tries again. fn must not call the returned function.
func Once[A, R any](fn func(A) R) func(A) R {
	call := OnceErr(func(arg A) (R, error) { return fn(arg), nil })
	return func(arg A) R {
		r, _ := call(arg)
		return r
	}
}

// OnceErr is [Once] for fallible functions: a call that returns an error
// leaves the latch unfired and passes the error through unchanged.
func OnceErr[A, R any](fn func(A) (R, error)) func(A) (R, error) {
	l := &latch[R]{}
	return func(arg A) (R, error) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.fired {
			return l.result, nil
		}
		r, err := fn(arg)
		if err != nil {
			return r, err
		}
		l.result, l.fired = r, true
		return r, nil
	}
}
