package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// This file holds the package-level helpers that either change the element
// type or accept any [Enumerable]. All of them traverse through [Each].

// Map applies fn to every element and returns the results in iteration
// order.
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[K comparable, V, U any](c Enumerable[K, V], fn func(V, K) U) *Collection[U] {
	out := make([]U, 0, c.Len())
	Each(c, func(v V, k K, _ Enumerable[K, V]) {
		out = append(out, fn(v, k))
	})
	return &Collection[U]{items: out}
}

// Filter returns the elements of c for which fn returns true.
func Filter[K comparable, V any](c Enumerable[K, V], fn func(V, K) bool) *Collection[V] {
	out := make([]V, 0, c.Len())
	Each(c, func(v V, k K, _ Enumerable[K, V]) {
		if fn(v, k) {
			out = append(out, v)
		}
	})
	return &Collection[V]{items: out}
}

// Reject returns the elements of c for which fn returns false.
func Reject[K comparable, V any](c Enumerable[K, V], fn func(V, K) bool) *Collection[V] {
	return Filter(c, func(v V, k K) bool { return !fn(v, k) })
}

// IndexOf returns the key of the first element equal to target, and false
// when there is none.
func IndexOf[K comparable, V comparable](c Enumerable[K, V], target V) (K, bool) {
	var found K
	matched := false
	walk(c, func(v V, k K) bool {
		if v == target {
			found, matched = k, true
			return false
		}
		return true
	})
	return found, matched
}

// Uniq returns the elements of c with later duplicates removed, keeping the
// first occurrence of each value.
func Uniq[K comparable, V comparable](c Enumerable[K, V]) *Collection[V] {
	seen := make(map[V]struct{}, c.Len())
	return Filter(c, func(v V, _ K) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// Pluck extracts one field from every element.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[K comparable, V, U any](c Enumerable[K, V], fn func(V) U) *Collection[U] {
	return Map(c, func(v V, _ K) U { return fn(v) })
}

// Invoke calls the method named method on every element with args and
// collects the first return value of each call (nil for methods returning
// nothing). It returns [ErrMethodNotFound] if any element lacks the method.
// args must be non-nil; a panic inside a method propagates to the caller.
//
// To call a function rather than a named method, use [InvokeFunc].
func Invoke[K comparable, V any](c Enumerable[K, V], method string, args ...any) (*Collection[any], error) {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	var err error
	out := Map(c, func(v V, k K) any {
		if err != nil {
			return nil
		}
		rv := reflect.ValueOf(v)
		var m reflect.Value
		if rv.IsValid() {
			m = rv.MethodByName(method)
		}
		if !m.IsValid() {
			err = fmt.Errorf("%w: %T has no method %q (key %v)", ErrMethodNotFound, v, method, k)
			return nil
		}
		res := m.Call(in)
		if len(res) == 0 {
			return nil
		}
		return res[0].Interface()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvokeFunc calls fn(element, arg) on every element and collects the
// results. It is the function form of [Invoke].
//
//	collections.InvokeFunc(words, strings.Repeat, 2)
func InvokeFunc[K comparable, V, A, U any](c Enumerable[K, V], fn func(V, A) U, arg A) *Collection[U] {
	return Map(c, func(v V, _ K) U { return fn(v, arg) })
}

// SortBy returns the elements of c ordered by the key fn derives from each.
// The sort is stable: elements with equal keys keep their iteration order.
func SortBy[K comparable, V any, O cmp.Ordered](c Enumerable[K, V], fn func(V) O) *Collection[V] {
	rows := Map(c, func(v V, _ K) Pair[O, V] { return P(fn(v), v) }).items
	slices.SortStableFunc(rows, func(a, b Pair[O, V]) int { return cmp.Compare(a.First, b.First) })
	return Pluck(From(rows), func(r Pair[O, V]) V { return r.Second })
}

// Collapse flattens exactly one level of a collection of slices.
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	out := make([]T, 0, c.Len())
	c.Each(func(chunk []T, _ int) { out = append(out, chunk...) })
	return &Collection[T]{items: out}
}
