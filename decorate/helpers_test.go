package decorate_test

import (
	"sync"
	"time"

	"github.com/hasbyte1/go-underbar-utils/decorate"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeScheduler records callbacks and runs them only when told to.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

type fakeTimer struct {
	wait    time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) decorate.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{wait: d, fn: f}
	s.pending = append(s.pending, t)
	return t
}

func (s *fakeScheduler) timers() []*fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*fakeTimer(nil), s.pending...)
}

// fire runs every timer that has not been stopped or fired yet.
func (s *fakeScheduler) fire() {
	for _, t := range s.timers() {
		if !t.stopped && !t.fired {
			t.fired = true
			t.fn()
		}
	}
}
