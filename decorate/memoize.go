package decorate

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

// Memo caches the results of a single-argument function by argument.
//
// Only successful results are cached. An error or panic from the wrapped
// function reaches the caller unchanged and the next call with the same key
// computes again. Concurrent misses on the same key share one computation.
//
// A key that is not equal to itself, such as a float NaN or a struct holding
// one, can never be found again in a map. Such keys bypass the cache and
// call the wrapped function every time.
//
// A Memo is safe for concurrent use. Its cache belongs to this Memo alone;
// memoizing the same function twice yields two independent caches.
type Memo[K comparable, R any] struct {
	fn      func(K) (R, error)
	logger  *slog.Logger
	flights singleflight.Group

	mu    sync.RWMutex
	cache map[K]R
}

// Memoize wraps fn in a [Memo].
//
//	fib := decorate.Memoize(func(n int) (int, error) { return slowFib(n), nil })
//	v, err := fib.Call(40)
func Memoize[K comparable, R any](fn func(K) (R, error), opts ...Option) *Memo[K, R] {
	o := newOptions(opts)
	return &Memo[K, R]{
		fn:     fn,
		logger: o.logger,
		cache:  make(map[K]R),
	}
}

// MemoizeFunc memoizes an infallible function and returns a plain function.
// Panics from fn propagate and are not cached.
func MemoizeFunc[K comparable, R any](fn func(K) R, opts ...Option) func(K) R {
	m := Memoize(func(key K) (R, error) { return fn(key), nil }, opts...)
	return func(key K) R {
		r, _ := m.Call(key)
		return r
	}
}

// Call returns the cached result for key, computing it on a miss.
func (m *Memo[K, R]) Call(key K) (R, error) {
	if key != key {
		m.logger.Debug("memoize: uncacheable key", "key", key)
		r, err := m.run(key)
		return r, unwrapPanic(err)
	}
	if r, ok := m.lookup(key); ok {
		m.logger.Debug("memoize: cache hit", "key", key)
		return r, nil
	}

	v, err, shared := m.flights.Do(flightKey(key), func() (any, error) {
		if r, ok := m.lookup(key); ok {
			return flight[K, R]{key: key, result: r}, nil
		}
		m.logger.Debug("memoize: cache miss", "key", key)
		r, err := m.compute(key)
		return flight[K, R]{key: key, result: r}, err
	})
	f, _ := v.(flight[K, R])
	if shared && f.key != key {
		// Digest collision between distinct keys: compute our own.
		r, err := m.compute(key)
		return r, unwrapPanic(err)
	}
	return f.result, unwrapPanic(err)
}

// Len returns the number of cached results.
func (m *Memo[K, R]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Forget drops the cached result for key, if any.
func (m *Memo[K, R]) Forget(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, key)
}

// Reset drops every cached result.
func (m *Memo[K, R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.cache)
}

func (m *Memo[K, R]) lookup(key K) (R, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.cache[key]
	return r, ok
}

// compute runs fn and caches a successful result.
func (m *Memo[K, R]) compute(key K) (R, error) {
	r, err := m.run(key)
	if err != nil {
		return r, err
	}
	m.mu.Lock()
	m.cache[key] = r
	m.mu.Unlock()
	return r, nil
}

// run calls fn. A panic in fn is returned as a *callPanic so that it
// survives the trip through singleflight with its original value.
func (m *Memo[K, R]) run(key K) (r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &callPanic{value: p}
		}
	}()
	return m.fn(key)
}

type flight[K comparable, R any] struct {
	key    K
	result R
}

type callPanic struct {
	value any
}

func (p *callPanic) Error() string {
	return fmt.Sprintf("decorate: memoized function panicked: %v", p.value)
}

// unwrapPanic re-raises a panic captured by compute and otherwise returns
// err unchanged.
func unwrapPanic(err error) error {
	if p, ok := err.(*callPanic); ok {
		panic(p.value)
	}
	return err
}

// flightKey derives the singleflight key for a memo key: a blake2b-256
// digest of its type and Go-syntax rendering.
func flightKey(key any) string {
	sum := blake2b.Sum256(fmt.Appendf(nil, "%T\x00%#v", key, key))
	return string(sum[:])
}
