package collections

import (
	"math"
	"reflect"
)

// Reduce folds c left-to-right, starting from seed.
//
//	sum := collections.Reduce(collections.New(1, 2, 3),
//	    func(acc, n int) int { return acc + n }, 0) // 6
func Reduce[K comparable, V, A any](c Enumerable[K, V], fn func(acc A, value V) A, seed A) A {
	return ReduceWhile(c, func(acc A, value V) (A, bool) {
		return fn(acc, value), true
	}, seed)
}

// ReduceFirst is the seedless form of [Reduce]: the first element is the
// initial accumulator and folding starts from the second element.
//
// On an empty collection it returns the zero value and false.
func ReduceFirst[K comparable, V any](c Enumerable[K, V], fn func(acc, value V) V) (V, bool) {
	var acc V
	seeded := false
	Each(c, func(value V, _ K, _ Enumerable[K, V]) {
		if !seeded {
			acc, seeded = value, true
			return
		}
		acc = fn(acc, value)
	})
	return acc, seeded
}

// ReduceWhile folds like [Reduce] but lets the combinator end the fold: when
// fn returns false as its second result, that accumulator is final and no
// further elements are visited.
func ReduceWhile[K comparable, V, A any](c Enumerable[K, V], fn func(acc A, value V) (A, bool), seed A) A {
	acc := seed
	walk(c, func(value V, _ K) bool {
		var more bool
		acc, more = fn(acc, value)
		return more
	})
	return acc
}

// Contains reports whether any element of c equals target. Comparison is Go
// equality with no conversion between types.
func Contains[K comparable, V comparable](c Enumerable[K, V], target V) bool {
	return ReduceWhile(c, func(_ bool, value V) (bool, bool) {
		if value == target {
			return true, false
		}
		return false, true
	}, false)
}

// Every reports whether every element satisfies pred. A nil pred tests
// [Truthy]. An empty collection yields true.
func Every[K comparable, V any](c Enumerable[K, V], pred func(V) bool) bool {
	pred = orTruthy(pred)
	return ReduceWhile(c, func(_ bool, value V) (bool, bool) {
		ok := pred(value)
		return ok, ok
	}, true)
}

// Some reports whether at least one element satisfies pred, stopping at the
// first that does. A nil pred tests [Truthy]. An empty collection yields
// false.
func Some[K comparable, V any](c Enumerable[K, V], pred func(V) bool) bool {
	pred = orTruthy(pred)
	return ReduceWhile(c, func(_ bool, value V) (bool, bool) {
		ok := pred(value)
		return ok, !ok
	}, false)
}

// Identity returns v.
func Identity[T any](v T) T { return v }

// Truthy reports whether v counts as true when used as a condition. Nil
// values (typed or not), false, numeric zero, NaN and the empty string are
// falsy. Everything else is truthy, including empty non-nil slices and maps.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func orTruthy[V any](pred func(V) bool) func(V) bool {
	if pred != nil {
		return pred
	}
	return func(v V) bool { return Truthy(v) }
}
