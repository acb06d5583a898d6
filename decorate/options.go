package decorate

import (
	"log/slog"
	"time"
)

// Option configures a decorator. The zero set of options gives the
// production defaults: a logger that discards, [SystemScheduler] and
// [time.Now].
type Option func(*options)

type options struct {
	logger    *slog.Logger
	scheduler Scheduler
	now       func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		logger:    slog.New(slog.DiscardHandler),
		scheduler: SystemScheduler,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that receives debug records about cache hits,
// suppressed calls and scheduled invocations. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithScheduler sets the scheduler used by [Delay] and [DelayWith].
// A nil scheduler is ignored.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithClock sets the time source used by [Throttle]. A nil func is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
