package collections

import (
	"iter"
	"slices"
)

// Keyed is the keyed form: a string-keyed mapping that iterates in
// insertion order. Re-setting an existing key keeps its original position.
//
// The zero value is not ready for use; create one with [NewKeyed].
type Keyed[V any] struct {
	keys   []string
	values map[string]V
}

// NewKeyed returns an empty Keyed collection.
func NewKeyed[V any]() *Keyed[V] {
	return &Keyed[V]{values: make(map[string]V)}
}

// KeyedFrom builds a Keyed collection from key/value pairs, in the order
// given. A repeated key keeps its first position and its last value.
func KeyedFrom[V any](pairs ...Pair[string, V]) *Keyed[V] {
	k := NewKeyed[V]()
	From(pairs).Each(func(p Pair[string, V], _ int) { k.Set(p.First, p.Second) })
	return k
}

// Set stores value under key.
func (k *Keyed[V]) Set(key string, value V) *Keyed[V] {
	if _, ok := k.values[key]; !ok {
		k.keys = append(k.keys, key)
	}
	k.values[key] = value
	return k
}

// Get returns the value stored under key and whether it exists.
func (k *Keyed[V]) Get(key string) (V, bool) {
	v, ok := k.values[key]
	return v, ok
}

// Has reports whether key exists.
func (k *Keyed[V]) Has(key string) bool {
	_, ok := k.values[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (k *Keyed[V]) Delete(key string) {
	if _, ok := k.values[key]; !ok {
		return
	}
	delete(k.values, key)
	k.keys = slices.DeleteFunc(k.keys, func(s string) bool { return s == key })
}

// Len returns the number of keys.
func (k *Keyed[V]) Len() int { return len(k.keys) }

// Keys returns a copy of the keys in insertion order.
func (k *Keyed[V]) Keys() []string { return slices.Clone(k.keys) }

// Seq yields (key, value) pairs in insertion order.
func (k *Keyed[V]) Seq() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range k.keys {
			if !yield(key, k.values[key]) {
				return
			}
		}
	}
}

// Values returns the values in insertion order as a sequential collection.
func (k *Keyed[V]) Values() *Collection[V] {
	return Map(k, func(v V, _ string) V { return v })
}

// Extend copies every key of each source into dst, overwriting existing
// keys, and returns dst. Later sources win.
func Extend[V any](dst *Keyed[V], sources ...Enumerable[string, V]) *Keyed[V] {
	From(sources).Each(func(src Enumerable[string, V], _ int) {
		Each(src, func(v V, key string, _ Enumerable[string, V]) {
			dst.Set(key, v)
		})
	})
	return dst
}

// Defaults is like [Extend] but never overwrites a key dst already has.
func Defaults[V any](dst *Keyed[V], sources ...Enumerable[string, V]) *Keyed[V] {
	From(sources).Each(func(src Enumerable[string, V], _ int) {
		Each(src, func(v V, key string, _ Enumerable[string, V]) {
			if !dst.Has(key) {
				dst.Set(key, v)
			}
		})
	})
	return dst
}
