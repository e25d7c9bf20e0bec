// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// span is a closed index range [lo, hi] awaiting partitioning.
type span struct {
	lo, hi int
}

func (r span) size() int { return r.hi - r.lo + 1 }

// QuickSort sorts the closed range seq[lo..hi] in place.
//
// Each step partitions the active range around its last element (Lomuto
// scheme, see Partition) and schedules both sides, excluding the pivot.
// Ranges are kept on an explicit work list instead of the call stack; the
// larger side is pushed first so the smaller one is processed next, which
// caps the list at O(log n) entries even on adversarial input.
//
// Calling conventions:
//   - lo >= hi is a no-op (covers the empty slice with QuickSort(s, 0, -1)).
//   - otherwise 0 ≤ lo and hi < len(seq) must hold, else ErrRangeOutOfBounds.
//
// Complexity: average O(n log n), worst O(n²) (e.g. every pivot extreme),
// O(log n) work-list space. Not stable.
//
// Errors: ErrRangeOutOfBounds, ErrIncomparable (wrapped).
func QuickSort[T constraints.Ordered](seq []T, lo, hi int, opts ...Option) error {
	if lo >= hi {
		return nil
	}
	if err := checkRange(len(seq), lo, hi); err != nil {
		return err
	}
	s := newSorter(seq, gatherOptions(opts))
	return s.quick(lo, hi)
}

// Partition performs one Lomuto partition of seq[lo..hi] around the pivot
// seq[hi] and returns the pivot's final index p. Afterwards:
//
//	seq[lo..p-1] ≤ pivot,  seq[p] == pivot,  seq[p+1..hi] > pivot.
//
// Errors: ErrRangeOutOfBounds (lo > hi or outside the slice),
// ErrIncomparable (wrapped).
func Partition[T constraints.Ordered](seq []T, lo, hi int, opts ...Option) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("sorting: Partition [%d, %d]: %w", lo, hi, ErrRangeOutOfBounds)
	}
	if err := checkRange(len(seq), lo, hi); err != nil {
		return 0, err
	}
	s := newSorter(seq, gatherOptions(opts))
	return s.partition(lo, hi)
}

func checkRange(n, lo, hi int) error {
	if lo < 0 || hi >= n {
		return fmt.Errorf("sorting: range [%d, %d] over length %d: %w", lo, hi, n, ErrRangeOutOfBounds)
	}
	return nil
}

func (s *sorter[T]) quick(lo, hi int) error {
	work := make([]span, 0, 16)
	work = append(work, span{lo: lo, hi: hi})
	s.noteWorkList(len(work))

	var (
		r           span
		left, right span
		p           int
		err         error
	)
	for len(work) > 0 {
		r = work[len(work)-1]
		work = work[:len(work)-1]

		if p, err = s.partition(r.lo, r.hi); err != nil {
			return err
		}

		left = span{lo: r.lo, hi: p - 1}
		right = span{lo: p + 1, hi: r.hi}
		if left.size() < right.size() {
			left, right = right, left
		}
		// left is now the larger side: push it first, pop the smaller next.
		if left.size() > 1 {
			work = append(work, left)
		}
		if right.size() > 1 {
			work = append(work, right)
		}
		s.noteWorkList(len(work))
	}

	return nil
}

// partition is the Lomuto step: i tracks the last slot holding an element
// ≤ pivot; every such element found by j is swapped forward to i.
func (s *sorter[T]) partition(lo, hi int) (int, error) {
	pivot := s.seq[hi]
	i := lo - 1

	var c int
	var err error
	for j := lo; j < hi; j++ {
		if c, err = s.cmp(s.seq[j], pivot, j); err != nil {
			return 0, err
		}
		if c <= 0 {
			i++
			s.swap(i, j)
		}
	}
	s.swap(i+1, hi)

	return i + 1, nil
}
