package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/rand"
)

// Collection is the sequential form: an ordered, index-addressed wrapper
// around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines at once.
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// Operations that change the element type ([Map], [Pluck], [Reduce], …) are
// package-level functions, because methods cannot introduce type parameters.
type Collection[T any] struct {
	items []T
}

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Count is an alias for [Collection.Len].
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Seq yields (index, item) pairs from 0 to Len()-1.
func (c *Collection[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// String returns a JSON representation of the collection, falling back to
// %v when the items cannot be marshalled.
func (c *Collection[T]) String() string {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	Each(c, func(item T, i int, _ Enumerable[int, T]) { fn(item, i) })
}

// First returns the first item, optionally the first matching fns[0].
// Returns the zero value and false when nothing qualifies.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var found T
	matched := false
	walk(c, func(item T, _ int) bool {
		if len(fns) > 0 && !fns[0](item) {
			return true
		}
		found, matched = item, true
		return false
	})
	return found, matched
}

// Last returns the last item, optionally the last matching fns[0].
// Returns the zero value and false when nothing qualifies.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var found T
	matched := false
	c.Each(func(item T, _ int) {
		if len(fns) == 0 || fns[0](item) {
			found, matched = item, true
		}
	})
	return found, matched
}

// Filter returns a new collection with only the items for which
// fn(item, index) returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	c.Each(func(item T, i int) {
		if fn(item, i) {
			out = append(out, item)
		}
	})
	return &Collection[T]{items: out}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Take returns at most n items from the start. A negative n returns items
// from the end, so Take(-3) is the last three items and Take(0) is empty.
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[max(total+n, 0):])
	}
	return From(c.items[:min(n, total)])
}

// Skip returns a new collection without the first n items. A negative n
// drops items from the end instead.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[:max(total+n, 0)])
	}
	return From(c.items[min(n, total):])
}

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, 0, len(c.items)+len(items))
	out = append(out, c.items...)
	return &Collection[T]{items: append(out, items...)}
}

// Shuffle returns a new collection with the items in random order.
func (c *Collection[T]) Shuffle() *Collection[T] {
	out := c.All()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return &Collection[T]{items: out}
}
