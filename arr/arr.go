package arr

import (
	"cmp"

	"github.com/hasbyte1/go-underbar-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & reduction
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element.
func Each[T any](items []T, fn func(T, int)) {
	wrap(items).Each(fn)
}

// Reduce folds items left-to-right starting from seed.
func Reduce[T, A any](items []T, fn func(A, T) A, seed A) A {
	return collections.Reduce(wrap(items), fn, seed)
}

// ReduceFirst folds items using the first element as the seed. Returns the
// zero value and false for an empty slice.
func ReduceFirst[T any](items []T, fn func(T, T) T) (T, bool) {
	return collections.ReduceFirst(wrap(items), fn)
}

// Contains reports whether items holds value.
func Contains[T comparable](items []T, value T) bool {
	return collections.Contains(wrap(items), value)
}

// Every reports whether all elements satisfy fn (nil tests truthiness).
// An empty slice yields true.
func Every[T any](items []T, fn func(T) bool) bool {
	return collections.Every(wrap(items), fn)
}

// Some reports whether any element satisfies fn (nil tests truthiness).
// An empty slice yields false.
func Some[T any](items []T, fn func(T) bool) bool {
	return collections.Some(wrap(items), fn)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	if i, ok := collections.IndexOf(wrap(items), value); ok {
		return i
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	return collections.Map(wrap(items), fn).All()
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	return wrap(items).Filter(fn).All()
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return wrap(items).Reject(fn).All()
}

// Uniq returns items without duplicates, keeping first occurrences.
func Uniq[T comparable](items []T) []T {
	return collections.Uniq(wrap(items)).All()
}

// Pluck extracts a value of type U from each element.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return collections.Pluck(wrap(items), fn).All()
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally the first matching fns[0].
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	return wrap(items).First(fns...)
}

// Last returns the last element, optionally the last matching fns[0].
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	return wrap(items).Last(fns...)
}

// Take returns the first n elements, or the last -n when n is negative.
func Take[T any](items []T, n int) []T {
	return wrap(items).Take(n).All()
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural operations
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups elements sharing an index; see [collections.Zip].
func Zip[T any](arrays ...[]T) [][]collections.Optional[T] {
	return collections.Zip(arrays...)
}

// Flatten recursively flattens nested slices; see [collections.Flatten].
func Flatten(items any) ([]any, error) {
	return collections.Flatten(items)
}

// Intersection returns the values present in every array; see
// [collections.Intersection].
func Intersection[T comparable](arrays ...[]T) []T {
	return collections.Intersection(arrays...)
}

// Difference returns first without the occurrences found in others; see
// [collections.Difference].
func Difference[T comparable](first []T, others ...[]T) []T {
	return collections.Difference(first, others...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	return wrap(items).Shuffle().All()
}

// SortBy returns a copy of items stably sorted by the key fn derives.
func SortBy[T any, O cmp.Ordered](items []T, fn func(T) O) []T {
	return collections.SortBy(wrap(items), fn).All()
}

// wrap adapts items to a Collection. The caller's slice is copied, never
// written.
func wrap[T any](items []T) *collections.Collection[T] {
	return collections.From(items)
}
