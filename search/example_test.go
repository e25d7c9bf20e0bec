package search_test

import (
	"fmt"

	"github.com/katalvlaran/algoprim/search"
)

// ExampleBinarySearch finds a key in a sorted slice.
func ExampleBinarySearch() {
	xs := []int{1, 3, 5, 7, 9, 11}
	fmt.Println(search.BinarySearch(xs, 7), search.BinarySearch(xs, 8))
	// Output:
	// 3 -1
}

// ExampleFirstOccurrence returns the leftmost of several equal keys.
func ExampleFirstOccurrence() {
	xs := []int{1, 2, 2, 2, 3, 4, 5, 5, 6}
	fmt.Println(search.BinarySearch(xs, 2), search.FirstOccurrence(xs, 2))
	// Output:
	// 1 1
}

// ExampleLinearSearch needs no ordering.
func ExampleLinearSearch() {
	fmt.Println(search.LinearSearch([]string{"pear", "fig", "kiwi"}, "kiwi"))
	// Output:
	// 2
}
