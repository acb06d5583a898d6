package collections

import "fmt"

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P is shorthand for constructing a [Pair].
func P[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Optional is a zipped slot: a value together with whether the source array
// was long enough to provide one. [Zip] fills short arrays with missing slots
// rather than dropping them.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Present wraps v as a present slot.
func Present[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

// String renders missing slots as "<missing>".
func (o Optional[T]) String() string {
	if !o.Present {
		return "<missing>"
	}
	return fmt.Sprintf("%v", o.Value)
}
