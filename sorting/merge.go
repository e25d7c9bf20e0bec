// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// frame is a pending half-open range [lo, hi) of the mergesort work list.
// merged == false means "split me"; true means both halves are sorted and
// only the merge remains.
type frame struct {
	lo, hi int
	merged bool
}

// MergeSort sorts seq in place.
//
// The range is split at its midpoint (left half gets ⌊n/2⌋ elements), each
// half is sorted, then the halves are merged by repeatedly taking the smaller
// front element, the left one on ties. Splits and merges are scheduled on an
// explicit frame stack rather than by recursion; one auxiliary buffer of
// len(seq) is shared by all merges.
//
// Complexity: O(n log n) always, O(n) auxiliary space. Stable.
//
// Errors: ErrIncomparable (wrapped).
func MergeSort[T constraints.Ordered](seq []T, opts ...Option) error {
	if len(seq) < 2 {
		return nil
	}
	s := newSorter(seq, gatherOptions(opts))
	return s.mergeSort()
}

func (s *sorter[T]) mergeSort() error {
	n := len(s.seq)
	buf := make([]T, n)
	work := make([]frame, 0, 32)
	work = append(work, frame{lo: 0, hi: n})
	s.noteWorkList(len(work))

	var (
		f   frame
		mid int
	)
	for len(work) > 0 {
		f = work[len(work)-1]
		work = work[:len(work)-1]

		mid = f.lo + (f.hi-f.lo)/2
		if f.merged {
			if err := s.merge(buf, f.lo, mid, f.hi); err != nil {
				return err
			}
			continue
		}

		// LIFO order: left half runs first, then right, then the merge.
		work = append(work, frame{lo: f.lo, hi: f.hi, merged: true})
		if f.hi-mid > 1 {
			work = append(work, frame{lo: mid, hi: f.hi})
		}
		if mid-f.lo > 1 {
			work = append(work, frame{lo: f.lo, hi: mid})
		}
		s.noteWorkList(len(work))
	}

	return nil
}

// merge combines the sorted runs seq[lo:mid] and seq[mid:hi] through buf.
func (s *sorter[T]) merge(buf []T, lo, mid, hi int) error {
	i, j, k := lo, mid, lo

	var c int
	var err error
	for i < mid && j < hi {
		if c, err = s.cmp(s.seq[i], s.seq[j], i); err != nil {
			return err
		}
		if c <= 0 {
			buf[k] = s.seq[i]
			i++
		} else {
			buf[k] = s.seq[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], s.seq[i:mid])
	copy(buf[k:hi], s.seq[j:hi])

	copy(s.seq[lo:hi], buf[lo:hi])
	s.st.Moves += hi - lo

	return nil
}

// Merge returns a new slice holding every element of the non-decreasing
// slices left and right (with multiplicity), in non-decreasing order.
// On ties the element from left comes first, so merging is stable.
// Inputs are not modified and their order is not verified.
//
// Complexity: O(len(left)+len(right)) time and space.
//
// Errors: ErrIncomparable (wrapped) on the first comparison touching a NaN.
func Merge[T constraints.Ordered](left, right []T) ([]T, error) {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		c, err := compare(left[i], right[j])
		if err != nil {
			return nil, fmt.Errorf("sorting: merge left[%d] with right[%d]: %w", i, j, err)
		}
		if c <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out, nil
}
