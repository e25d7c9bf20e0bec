// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// BubbleSort sorts seq in place by repeated adjacent compare-and-swap and
// returns the number of swaps performed.
//
// Pass i (0 ≤ i < n−1) walks j over [0, n−i−2] and swaps seq[j], seq[j+1]
// whenever seq[j] > seq[j+1], so after pass i the i+1 largest elements sit
// in their final positions. All n−1 passes always run: there is no
// early exit on a swap-free pass. The swap count therefore equals the number
// of inversions of the input.
//
// Complexity: O(n²) comparisons in every case, O(1) extra space. Stable.
//
// Errors: ErrIncomparable (wrapped) on the first comparison touching a NaN.
func BubbleSort[T constraints.Ordered](seq []T, opts ...Option) (int, error) {
	s := newSorter(seq, gatherOptions(opts))
	return s.bubble()
}

func (s *sorter[T]) bubble() (int, error) {
	n := len(s.seq)
	swaps := 0
	var i, j, c int
	var err error
	for i = 0; i < n-1; i++ {
		for j = 0; j < n-i-1; j++ {
			if c, err = s.cmp(s.seq[j], s.seq[j+1], j); err != nil {
				return swaps, err
			}
			if c > 0 {
				s.swap(j, j+1)
				swaps++
			}
		}
	}

	return swaps, nil
}

// SelectionSort sorts seq in place. For each position i in [0, n−2] it scans
// the unsorted suffix for its minimum and swaps it into i (only when the
// minimum is not already there).
//
// Complexity: O(n²) comparisons, at most n−1 swaps, O(1) extra space.
// Not stable.
//
// Errors: ErrIncomparable (wrapped).
func SelectionSort[T constraints.Ordered](seq []T, opts ...Option) error {
	s := newSorter(seq, gatherOptions(opts))
	return s.selection()
}

func (s *sorter[T]) selection() error {
	n := len(s.seq)
	var i, j, minIdx, c int
	var err error
	for i = 0; i < n-1; i++ {
		minIdx = i
		for j = i + 1; j < n; j++ {
			if c, err = s.cmp(s.seq[j], s.seq[minIdx], j); err != nil {
				return err
			}
			if c < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			s.swap(i, minIdx)
		}
	}

	return nil
}

// InsertionSort sorts seq in place by growing a sorted prefix: each new
// element is held aside while larger prefix elements shift one slot right,
// then dropped into the gap.
//
// Complexity: O(n²) worst/average, O(n) on already-sorted input,
// O(1) extra space. Stable (equal elements never shift past each other).
//
// Errors: ErrIncomparable (wrapped). The held element is written back before
// returning, so the slice stays a permutation of the input.
func InsertionSort[T constraints.Ordered](seq []T, opts ...Option) error {
	s := newSorter(seq, gatherOptions(opts))
	return s.insertion()
}

func (s *sorter[T]) insertion() error {
	var (
		i, j, c int
		key     T
		err     error
	)
	for i = 1; i < len(s.seq); i++ {
		key = s.seq[i]
		j = i - 1
		for j >= 0 {
			if c, err = s.cmp(s.seq[j], key, j); err != nil {
				s.seq[j+1] = key
				return err
			}
			if c <= 0 {
				break
			}
			s.seq[j+1] = s.seq[j]
			s.st.Moves++
			j--
		}
		s.seq[j+1] = key
	}

	return nil
}
