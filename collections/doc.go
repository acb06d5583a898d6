// Package collections provides generic iteration, reduction and set-like
// operations over sequential and keyed collections.
//
// # Two forms, one traversal
//
// [Collection][T] is the sequential form (index order). [Keyed][V] is the
// keyed form (string keys, insertion order). Both implement [Enumerable], and
// [Of] adapts plain slices, arrays and string-keyed maps at runtime.
//
// [Each] is the only traversal primitive. Reduction, predicates, mapping and
// the structural operations are all expressed through it, so iteration order
// is defined in exactly one place per form:
//
//	sum := collections.Reduce(collections.New(1, 2, 3),
//	    func(acc, n int) int { return acc + n }, 0) // 6
//
//	collections.Some(collections.New[any](0, "", 3), nil) // true
//
// # Reduction
//
// [Reduce] always takes a seed, so 0, "" and false are ordinary seeds.
// [ReduceFirst] is the seedless form and reports whether the collection had
// an element to seed from. [ReduceWhile] lets the combinator stop the fold;
// [Contains], [Every] and [Some] use it to short-circuit.
//
// # Structural operations
//
//	collections.Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3})
//	// → [[a 1] [b 2] [c 3] [d <missing>]]
//
//	collections.Intersection([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1})
//	// → [1 2]
//
//	collections.Difference([]int{1, 2, 3, 4}, []int{2, 3})
//	// → [1 4]
//
// # Immutability
//
// No operation in this package mutates its inputs. [Extend] and [Defaults]
// write to their explicit destination only.
package collections
