// Package arr provides the collection helpers of package collections for
// plain Go slices, plus dot-path property access for map[string]any rows.
//
// # Slice helpers
//
// Every helper takes and returns plain []T values; no wrapper type is
// required and the input slice is never modified:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	arr.Contains([]string{"a", "b"}, "b")                  // true
//	arr.Difference([]int{1, 2, 3, 4}, []int{2, 3})         // [1 4]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 1}, []int{1, 2}) // [1 2]
//
// # Dot-path access
//
// Rows decoded from JSON are usually map[string]any. [PluckPath] and
// [SortByPath] address a property of each row by a dot-separated path:
//
//	arr.PluckPath(rows, "address.city")
//	arr.SortByPath[string](rows, "name")
package arr
