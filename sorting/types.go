// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncomparable indicates that a comparison involved a value that is not
	// ordered against anything (NaN for floating-point element types).
	ErrIncomparable = errors.New("sorting: incomparable element")

	// ErrRangeOutOfBounds indicates that a [lo, hi] range passed to QuickSort
	// or Partition does not lie within the slice.
	ErrRangeOutOfBounds = errors.New("sorting: range out of bounds")

	// ErrUnknownAlgorithm is returned by Sort and ParseAlgorithm for an
	// Algorithm value or name that is not one of the five supported sorts.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Algorithm selects one of the sorting strategies for Sort.
type Algorithm int

const (
	// AlgoBubble: n−1 full passes of adjacent compare-and-swap.
	AlgoBubble Algorithm = iota

	// AlgoSelection: minimum scan over the unsorted suffix, one swap per position.
	AlgoSelection

	// AlgoInsertion: incremental sorted prefix with rightward shifts.
	AlgoInsertion

	// AlgoQuick: Lomuto-partition quicksort over the whole slice.
	AlgoQuick

	// AlgoMerge: top-down mergesort with one auxiliary buffer.
	AlgoMerge
)

var algorithmNames = [...]string{
	AlgoBubble:    "bubble",
	AlgoSelection: "selection",
	AlgoInsertion: "insertion",
	AlgoQuick:     "quick",
	AlgoMerge:     "merge",
}

// Algorithms returns every supported Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoSelection, AlgoInsertion, AlgoQuick, AlgoMerge}
}

// String returns the short lowercase name ("bubble", "quick", ...).
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// MarshalText encodes the algorithm by name, so JSON and YAML carry "quick"
// rather than an integer.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText accepts any spelling understood by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case AlgoBubble, AlgoInsertion, AlgoMerge:
		return true
	default:
		return false
	}
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive
// and tolerates a trailing "sort" ("QuickSort", "merge-sort", "bubble").
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimRight(key, "-_ ")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Stats collects diagnostics for a single sort call.
// Counters are informational; they are not part of the ordering contract.
type Stats struct {
	// Algorithm that produced these counters (set by Sort only).
	Algorithm Algorithm `json:"algorithm"`

	// Comparisons counts element comparisons, including the one that failed.
	Comparisons int `json:"comparisons"`

	// Swaps counts pairwise exchanges (quicksort counts its self-swaps too).
	Swaps int `json:"swaps"`

	// Moves counts single-element writes that are not part of a swap:
	// insertion-sort shifts and mergesort buffer write-backs.
	Moves int `json:"moves"`

	// MaxWorkList is the peak number of pending ranges/frames held by the
	// explicit work list of QuickSort and MergeSort. Zero for the others.
	MaxWorkList int `json:"max_work_list"`
}

// Option configures optional behavior of the sorts.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	// Stats, if non-nil, receives the call's counters. Counters are added to,
	// not reset, so one Stats may aggregate several calls.
	Stats *Stats
}

// DefaultOptions returns Options with no diagnostics sink.
func DefaultOptions() Options {
	return Options{Stats: nil}
}

// WithStats returns an Option that accumulates diagnostics into st.
// Passing nil has no effect.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		if st != nil {
			o.Stats = st
		}
	}
}

// gatherOptions applies opts over DefaultOptions and guarantees a non-nil
// Stats sink so hot loops can count unconditionally.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Stats == nil {
		o.Stats = &Stats{}
	}
	return o
}
