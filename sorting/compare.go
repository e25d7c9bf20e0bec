// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// compare returns -1, 0 or +1 for a < b, a == b, a > b.
// A NaN operand (the only self-unequal Ordered value) yields ErrIncomparable.
func compare[T constraints.Ordered](a, b T) (int, error) {
	if a != a || b != b {
		return 0, ErrIncomparable
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// sorter binds a slice to its diagnostics sink.
type sorter[T constraints.Ordered] struct {
	seq []T
	st  *Stats
}

func newSorter[T constraints.Ordered](seq []T, o Options) *sorter[T] {
	return &sorter[T]{seq: seq, st: o.Stats}
}

// cmp compares two values; at is the slice index reported on failure.
func (s *sorter[T]) cmp(a, b T, at int) (int, error) {
	s.st.Comparisons++
	c, err := compare(a, b)
	if err != nil {
		return 0, fmt.Errorf("sorting: compare at index %d: %w", at, err)
	}
	return c, nil
}

func (s *sorter[T]) swap(i, j int) {
	s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
	s.st.Swaps++
}

// noteWorkList records the current explicit work-list size.
func (s *sorter[T]) noteWorkList(n int) {
	if n > s.st.MaxWorkList {
		s.st.MaxWorkList = n
	}
}
