package collections

import "fmt"

// Zip groups the elements sharing an index across arrays. The result has one
// row per index up to the longest array; row i holds arrays[k][i] in slot k,
// or a missing [Optional] when arrays[k] is shorter than i+1.
//
//	collections.Zip([]string{"a", "b"}, []string{"x"})
//	// → [[a x] [b <missing>]]
func Zip[T any](arrays ...[]T) [][]Optional[T] {
	cs := Map(From(arrays), func(a []T, _ int) *Collection[T] {
		return &Collection[T]{items: a}
	})
	return ZipCollections(cs.items...).items
}

// ZipCollections is [Zip] over collections.
func ZipCollections[T any](cs ...*Collection[T]) *Collection[[]Optional[T]] {
	columns := From(cs)
	longest := Reduce(columns, func(n int, c *Collection[T]) int {
		return max(n, c.Len())
	}, 0)
	rows := make([][]Optional[T], longest)
	for i := range rows {
		rows[i] = make([]Optional[T], len(cs))
	}
	columns.Each(func(c *Collection[T], slot int) {
		c.Each(func(v T, i int) { rows[i][slot] = Present(v) })
	})
	return &Collection[[]Optional[T]]{items: rows}
}

// Flatten recursively flattens nested, depth-first and left-to-right. Every
// slice, array or *Collection[any] is a nesting level; any other value is a
// leaf and is kept as-is. It fails with [ErrInvalidInput] when nested itself
// is not a sequence. A nil *Collection[any] is an empty level.
//
//	collections.Flatten([]any{1, []any{2}, []any{3, []any{[]any{4}}}})
//	// → [1 2 3 4]
func Flatten(nested any) ([]any, error) {
	if !isSequential(nested) {
		return nil, fmt.Errorf("%w: %T", ErrInvalidInput, nested)
	}
	out := make([]any, 0)
	var descend func(v any) error
	descend = func(v any) error {
		if !isSequential(v) {
			out = append(out, v)
			return nil
		}
		level, err := Of(v)
		if err != nil {
			return err
		}
		walk(level, func(item any, _ any) bool {
			err = descend(item)
			return err == nil
		})
		return err
	}
	if err := descend(nested); err != nil {
		return nil, err
	}
	return out, nil
}

// FlattenDeep is [Flatten] for a Collection[any], which is always a valid
// sequence.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out, _ := Flatten(c)
	return &Collection[any]{items: out}
}

// Intersection returns the values present in every one of arrays, without
// duplicates, in order of first appearance. A single array comes back
// deduplicated; no arrays yield an empty result.
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	sets := Map(From(arrays[1:]), func(a []T, _ int) map[T]struct{} {
		return toSet(From(a))
	})
	return Uniq(From(arrays[0])).Filter(func(v T, _ int) bool {
		return Every(sets, func(set map[T]struct{}) bool {
			_, ok := set[v]
			return ok
		})
	}).items
}

// Difference returns the elements of first that are not cancelled out by
// others. Every occurrence of a value in others removes one occurrence of it
// from first, earliest first, so duplicates in first are removed
// independently. Order is preserved and no input is modified.
//
//	collections.Difference([]int{1, 1, 2, 3}, []int{1, 3}) // → [1 2]
func Difference[T comparable](first []T, others ...[]T) []T {
	pending := make(map[T]int)
	From(others).Each(func(o []T, _ int) {
		From(o).Each(func(v T, _ int) { pending[v]++ })
	})
	return From(first).Filter(func(v T, _ int) bool {
		if pending[v] > 0 {
			pending[v]--
			return false
		}
		return true
	}).items
}

func toSet[T comparable](c *Collection[T]) map[T]struct{} {
	return Reduce(c, func(set map[T]struct{}, v T) map[T]struct{} {
		set[v] = struct{}{}
		return set
	}, make(map[T]struct{}, c.Len()))
}
