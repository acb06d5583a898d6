package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-underbar-utils/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleReduce() {
	total := arr.Reduce([]float64{1.5, 2.5}, func(acc, n float64) float64 { return acc + n }, 0)
	fmt.Println(total)
	// Output: 4
}

func ExampleZip() {
	fmt.Println(arr.Zip([]any{"a", "b", "c", "d"}, []any{1, 2, 3}))
	// Output: [[a 1] [b 2] [c 3] [d <missing>]]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]int{1, 1, 2, 3}, []int{1, 3}))
	// Output: [1 2]
}

func ExamplePluckPath() {
	rows := []map[string]any{
		{"name": "Alice", "address": map[string]any{"city": "London"}},
		{"name": "Bob", "address": map[string]any{"city": "Paris"}},
	}
	fmt.Println(arr.PluckPath(rows, "address.city"))
	// Output: [London Paris]
}
