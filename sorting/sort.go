// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort routes seq to the requested algorithm and returns the call's Stats.
// QuickSort is applied to the full range [0, len(seq)-1].
//
// The returned Stats covers this call only; if opts also carry WithStats,
// that sink accumulates the same counters.
//
// Errors: ErrUnknownAlgorithm, plus whatever the chosen algorithm returns.
func Sort[T constraints.Ordered](seq []T, algo Algorithm, opts ...Option) (Stats, error) {
	o := gatherOptions(opts)
	outer := o.Stats
	st := Stats{Algorithm: algo}
	o.Stats = &st

	s := newSorter(seq, o)
	var err error
	switch algo {
	case AlgoBubble:
		_, err = s.bubble()
	case AlgoSelection:
		err = s.selection()
	case AlgoInsertion:
		err = s.insertion()
	case AlgoQuick:
		if len(seq) > 1 {
			err = s.quick(0, len(seq)-1)
		}
	case AlgoMerge:
		if len(seq) > 1 {
			err = s.mergeSort()
		}
	default:
		return st, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}

	outer.Comparisons += st.Comparisons
	outer.Swaps += st.Swaps
	outer.Moves += st.Moves
	if st.MaxWorkList > outer.MaxWorkList {
		outer.MaxWorkList = st.MaxWorkList
	}
	outer.Algorithm = algo

	return st, err
}

// IsSorted reports whether seq is in non-decreasing order.
// A slice containing NaN is never considered sorted.
//
// Complexity: O(n).
func IsSorted[T constraints.Ordered](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		c, err := compare(seq[i-1], seq[i])
		if err != nil || c > 0 {
			return false
		}
	}
	if len(seq) == 1 && seq[0] != seq[0] {
		return false
	}

	return true
}
