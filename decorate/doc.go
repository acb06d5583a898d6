// Package decorate wraps functions with private state that changes how they
// are invoked.
//
//   - [Once] / [OnceErr]: run the first call, replay its result forever.
//   - [Memoize] / [MemoizeFunc]: cache successful results per argument.
//   - [Delay] / [DelayWith]: run once, later, without blocking the caller.
//   - [Throttle] / [NewThrottler]: run at most once per window, dropping the
//     calls in between.
//
// # State ownership
//
// Every wrapper owns its state (latch, cache, limiter) and guards it with
// its own mutex. Wrapping the same function twice gives two independent
// wrappers. No package-level mutable state exists.
//
// # Failures
//
// Errors and panics from the wrapped function reach the caller unchanged.
// [Memoize] never caches a failed call and [OnceErr] does not latch on one.
// Nothing here retries.
//
// # Time
//
// [Delay] schedules through a [Scheduler] (default [SystemScheduler], backed
// by time.AfterFunc) and [Throttle] reads a clock (default time.Now). Both
// can be replaced with [WithScheduler] and [WithClock], which is how the
// tests drive them without sleeping.
package decorate
