// SPDX-License-Identifier: MIT

// Package sorting implements five classic in-place comparison sorts over
// generic ordered slices: bubble, selection, insertion, quicksort and
// mergesort.
//
// 🚀 What is sorting?
//
//	A small, dependency-light engine that turns any []T (T ordered:
//	integers, floats, strings) into non-decreasing order, reporting
//	diagnostics on request. Every algorithm is deliberately "textbook":
//	  • BubbleSort    – n−1 full adjacent-swap passes, returns the swap count
//	  • SelectionSort – minimum scan + one swap per position
//	  • InsertionSort – shifts the sorted prefix right; stable
//	  • QuickSort     – Lomuto partition around the last element of the range
//	  • MergeSort     – midpoint split, stable merge through one buffer
//
// ✨ Key features:
//   - No recursion: quicksort ranges and mergesort frames are driven by an
//     explicit work list, so deep or adversarial inputs never exhaust the
//     goroutine stack. The quicksort work list stays O(log n).
//   - Fail fast on unordered values: a NaN reached by any comparison aborts
//     the sort with ErrIncomparable (wrapped with the index).
//   - Diagnostics: WithStats collects comparisons, swaps, element moves and
//     the peak work-list size.
//   - Dispatcher: Sort(seq, algo) with ParseAlgorithm for CLIs and configs.
//
// ⚙️ Usage:
//
//	data := []int{64, 34, 25, 12, 22, 11, 90}
//	if err := sorting.QuickSort(data, 0, len(data)-1); err != nil {
//		// handle ErrIncomparable / ErrRangeOutOfBounds
//	}
//
//	var st sorting.Stats
//	swaps, _ := sorting.BubbleSort(data, sorting.WithStats(&st))
//
// Complexity:
//
//	Algorithm   Best        Average     Worst       Extra space  Stable
//	Bubble      O(n²)       O(n²)       O(n²)       O(1)         yes
//	Selection   O(n²)       O(n²)       O(n²)       O(1)         no
//	Insertion   O(n)        O(n²)       O(n²)       O(1)         yes
//	Quick       O(n log n)  O(n log n)  O(n²)       O(log n)     no
//	Merge       O(n log n)  O(n log n)  O(n log n)  O(n)         yes
//
// Errors:
//   - ErrIncomparable      a comparison touched a NaN
//   - ErrRangeOutOfBounds  QuickSort/Partition range outside the slice
//   - ErrUnknownAlgorithm  unknown Algorithm value or name
//
// After an error the slice is left in an unspecified (but valid) permutation
// state and must not be relied upon.
package sorting
