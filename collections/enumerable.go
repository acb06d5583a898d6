package collections

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Enumerable is the interface satisfied by every collection this package can
// traverse: [Collection][T] (keys are indices), [Keyed][V] (keys are strings,
// insertion order) and the dynamic adapter returned by [Of].
//
// Accept Enumerable in your own functions so that callers can pass either
// form without committing to a concrete container.
type Enumerable[K comparable, V any] interface {
	// Len returns the number of elements.
	Len() int

	// Seq yields (key, value) pairs in iteration order.
	Seq() iter.Seq2[K, V]
}

// Visitor is called by [Each] with the value, its key (index for sequential
// collections) and the collection being traversed.
type Visitor[K comparable, V any] func(value V, key K, c Enumerable[K, V])

// Each calls visit(value, key, c) once for every element of c, in iteration
// order.
//
// Each is the single traversal primitive of this package. Everything else is
// built on it, or on walk when it needs to stop early.
func Each[K comparable, V any](c Enumerable[K, V], visit Visitor[K, V]) {
	walk(c, func(value V, key K) bool {
		visit(value, key, c)
		return true
	})
}

// walk is Each with an early-exit signal: traversal stops as soon as fn
// returns false.
func walk[K comparable, V any](c Enumerable[K, V], fn func(value V, key K) bool) {
	for k, v := range c.Seq() {
		if !fn(v, k) {
			return
		}
	}
}

// Of adapts a dynamically typed value to an Enumerable.
//
//   - slices and arrays iterate in index order (keys are ints);
//   - maps with string keys iterate in sorted key order (keys are strings);
//   - a *Collection[any] or *Keyed[any] is adapted directly; a nil one is
//     empty.
//
// Anything else yields [ErrInvalidInput]. A nil value is not a collection.
func Of(v any) (Enumerable[any, any], error) {
	switch c := v.(type) {
	case *Collection[any]:
		if c == nil {
			c = Empty[any]()
		}
		return dynamic[int]{c}, nil
	case *Keyed[any]:
		if c == nil {
			c = NewKeyed[any]()
		}
		return dynamic[string]{c}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflected{rv: rv}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrInvalidInput, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return reflected{rv: rv, keys: keys}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidInput, v)
}

// isSequential reports whether v is a nesting level for Flatten. A nil
// *Collection[any] is an empty level.
func isSequential(v any) bool {
	if _, ok := v.(*Collection[any]); ok {
		return true
	}
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

type dynamic[K comparable] struct {
	c Enumerable[K, any]
}

func (d dynamic[K]) Len() int { return d.c.Len() }

func (d dynamic[K]) Seq() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range d.c.Seq() {
			if !yield(k, v) {
				return
			}
		}
	}
}

type reflected struct {
	rv   reflect.Value
	keys []string // nil for slices and arrays
}

func (r reflected) Len() int { return r.rv.Len() }

func (r reflected) Seq() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if r.rv.Kind() == reflect.Map {
			for _, k := range r.keys {
				v := r.rv.MapIndex(reflect.ValueOf(k).Convert(r.rv.Type().Key()))
				if !yield(k, v.Interface()) {
					return
				}
			}
			return
		}
		for i := 0; i < r.rv.Len(); i++ {
			if !yield(i, r.rv.Index(i).Interface()) {
				return
			}
		}
	}
}
