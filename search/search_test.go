package search_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/search"
	"github.com/katalvlaran/algoprim/seqgen"
)

var dupes = []int{1, 2, 2, 2, 3, 4, 5, 5, 6}

// TestFirstOccurrence_Duplicates pins the leftmost index among runs of equal keys.
func TestFirstOccurrence_Duplicates(t *testing.T) {
	assert.Equal(t, 1, search.FirstOccurrence(dupes, 2))
	assert.Equal(t, 6, search.FirstOccurrence(dupes, 5))
	assert.Equal(t, 0, search.FirstOccurrence(dupes, 1))
	assert.Equal(t, 8, search.FirstOccurrence(dupes, 6))
	assert.Equal(t, search.NotFound, search.FirstOccurrence(dupes, 7))
	assert.Equal(t, search.NotFound, search.FirstOccurrence([]int{}, 7))
}

// TestFirstOccurrence_AllEqual covers the linear left walk across the whole slice.
func TestFirstOccurrence_AllEqual(t *testing.T) {
	same := make([]int, 1000)
	for i := range same {
		same[i] = 4
	}
	assert.Equal(t, 0, search.FirstOccurrence(same, 4))
}

// TestEmptyInput verifies every variant returns NotFound on an empty slice.
func TestEmptyInput(t *testing.T) {
	var empty []float64
	assert.Equal(t, search.NotFound, search.LinearSearch(empty, 1))
	assert.Equal(t, search.NotFound, search.BinarySearch(empty, 1))
	assert.Equal(t, search.NotFound, search.RecursiveBinarySearch(empty, 1, 0, -1))
	assert.Equal(t, search.NotFound, search.RecursiveBinarySearch(empty, 1, 0, 10))
	assert.Equal(t, search.NotFound, search.FirstOccurrence(empty, 1))
}

// TestLinearSearch_FirstMatch checks front-to-back semantics on unsorted input.
func TestLinearSearch_FirstMatch(t *testing.T) {
	xs := []string{"b", "a", "c", "a"}
	assert.Equal(t, 1, search.LinearSearch(xs, "a"))
	assert.Equal(t, 2, search.LinearSearch(xs, "c"))
	assert.Equal(t, search.NotFound, search.LinearSearch(xs, "z"))
}

// TestBinaryAndLinearAgree checks both searches agree on presence for every
// target in and around a sorted random slice.
func TestBinaryAndLinearAgree(t *testing.T) {
	xs, err := seqgen.Ints(200, 150, 3)
	require.NoError(t, err)
	slices.Sort(xs)

	for target := 0; target <= 151; target++ {
		li := search.LinearSearch(xs, target)
		bi := search.BinarySearch(xs, target)
		ri := search.RecursiveBinarySearch(xs, target, 0, len(xs)-1)
		if li == search.NotFound {
			assert.Equal(t, search.NotFound, bi, "target %d", target)
			assert.Equal(t, search.NotFound, ri, "target %d", target)
			continue
		}
		require.NotEqual(t, search.NotFound, bi, "target %d", target)
		require.NotEqual(t, search.NotFound, ri, "target %d", target)
		assert.Equal(t, target, xs[bi])
		assert.Equal(t, target, xs[ri])
		assert.Equal(t, li, search.FirstOccurrence(xs, target), "leftmost index must match linear scan")
	}
}

// TestRecursiveBinarySearch_Range restricts the search to a sub-range.
func TestRecursiveBinarySearch_Range(t *testing.T) {
	xs := []int{10, 20, 30, 40, 50, 60}
	assert.Equal(t, 3, search.RecursiveBinarySearch(xs, 40, 2, 5))
	assert.Equal(t, search.NotFound, search.RecursiveBinarySearch(xs, 40, 0, 2), "target outside range")
	assert.Equal(t, search.NotFound, search.RecursiveBinarySearch(xs, 30, 4, 1), "lo > hi")
	assert.Equal(t, 0, search.RecursiveBinarySearch(xs, 10, -5, 99), "bounds are clamped")
	assert.Equal(t, 5, search.RecursiveBinarySearch(xs, 60, -5, 99))
}

// TestBinarySearch_Floats exercises a non-integer element type.
func TestBinarySearch_Floats(t *testing.T) {
	xs := []float64{-2.5, -1, 0, 0.5, 3.25}
	assert.Equal(t, 3, search.BinarySearch(xs, 0.5))
	assert.Equal(t, search.NotFound, search.BinarySearch(xs, 0.25))
}
