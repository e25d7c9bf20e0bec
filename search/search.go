// SPDX-License-Identifier: MIT

package search

import "golang.org/x/exp/constraints"

// NotFound is the index returned when the target is absent.
const NotFound = -1

// LinearSearch returns the first index i with seq[i] == target, or NotFound.
//
// Complexity: O(n).
func LinearSearch[T comparable](seq []T, target T) int {
	for i, v := range seq {
		if v == target {
			return i
		}
	}

	return NotFound
}

// BinarySearch returns an index holding target in the sorted slice seq, or
// NotFound. With duplicates any matching index may be returned.
//
// Complexity: O(log n).
func BinarySearch[T constraints.Ordered](seq []T, target T) int {
	return narrow(seq, target, 0, len(seq)-1)
}

// RecursiveBinarySearch searches the closed range [lo, hi] of the sorted
// slice seq. lo > hi yields NotFound. Bounds reaching outside the slice are
// clamped to [0, len(seq)-1].
//
// The range narrowing runs as a loop, so stack use is constant.
//
// Complexity: O(log(hi-lo+1)).
func RecursiveBinarySearch[T constraints.Ordered](seq []T, target T, lo, hi int) int {
	if lo < 0 {
		lo = 0
	}
	if hi > len(seq)-1 {
		hi = len(seq) - 1
	}

	return narrow(seq, target, lo, hi)
}

// FirstOccurrence returns the leftmost index holding target in the sorted
// slice seq, or NotFound.
//
// Complexity: O(log n + k), k = number of copies of target.
func FirstOccurrence[T constraints.Ordered](seq []T, target T) int {
	i := BinarySearch(seq, target)
	if i == NotFound {
		return NotFound
	}
	for i > 0 && seq[i-1] == target {
		i--
	}

	return i
}

// narrow halves [lo, hi] until target is found or the range is empty.
func narrow[T constraints.Ordered](seq []T, target T, lo, hi int) int {
	var mid int
	for lo <= hi {
		mid = lo + (hi-lo)/2
		switch {
		case seq[mid] == target:
			return mid
		case seq[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}
