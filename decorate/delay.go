package decorate

import "time"

// Delay schedules one call of fn, no sooner than wait from now, and returns
// immediately. Every call to Delay schedules its own invocation; nothing is
// coalesced. The returned [Timer] may be used to cancel, but need not be.
//
// With the default [SystemScheduler], fn runs on its own goroutine, and a
// panic in fn is not recovered.
func Delay(fn func(), wait time.Duration, opts ...Option) Timer {
	o := newOptions(opts)
	o.logger.Debug("delay: scheduled", "wait", wait)
	return o.scheduler.AfterFunc(wait, func() {
		o.logger.Debug("delay: firing", "wait", wait)
		fn()
	})
}

// DelayWith is [Delay] for a function taking one argument. arg is captured
// at call time.
//
//	decorate.DelayWith(send, 500*time.Millisecond, msg)
func DelayWith[A any](fn func(A), wait time.Duration, arg A, opts ...Option) Timer {
	return Delay(func() { fn(arg) }, wait, opts...)
}
