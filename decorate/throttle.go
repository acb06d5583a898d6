package decorate

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttler invokes a function at most once per window.
//
// The policy is leading-edge with drop: a call while idle runs fn at once
// and starts a cooling window of the configured length; calls that arrive
// while cooling are dropped, never queued or replayed. A dropped call
// returns the result of the last call that ran.
//
// A Throttler is safe for concurrent use.
type Throttler[A, R any] struct {
	fn     func(A) R
	wait   time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu      sync.Mutex
	limiter *rate.Limiter
	last    R
}

// NewThrottler wraps fn so that it runs at most once per wait. A wait of
// zero or less disables throttling.
func NewThrottler[A, R any](fn func(A) R, wait time.Duration, opts ...Option) *Throttler[A, R] {
	o := newOptions(opts)
	limit := rate.Inf
	if wait > 0 {
		limit = rate.Every(wait)
	}
	return &Throttler[A, R]{
		fn:      fn,
		wait:    wait,
		now:     o.now,
		logger:  o.logger,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Throttle is [NewThrottler] returning just the call function.
func Throttle[A, R any](fn func(A) R, wait time.Duration, opts ...Option) func(A) (R, bool) {
	return NewThrottler(fn, wait, opts...).Call
}

// Call runs fn(arg) and returns its result with true if the throttler is
// idle. While cooling it returns the last result and false without calling
// fn.
//
// fn runs with the throttler locked, so calls that arrive meanwhile wait for
// it and are then dropped.
func (t *Throttler[A, R]) Call(arg A) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.limiter.AllowN(t.now(), 1) {
		t.logger.Debug("throttle: call suppressed", "wait", t.wait)
		return t.last, false
	}
	t.last = t.fn(arg)
	return t.last, true
}

// Cooling reports whether a call made now would be suppressed.
func (t *Throttler[A, R]) Cooling() bool {
	if t.wait <= 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limiter.TokensAt(t.now()) < 1
}
