// SPDX-License-Identifier: MIT

package seqgen

// Ints returns n pseudo-random integers drawn uniformly from [1, max].
//
// Errors: ErrNegativeLength (n < 0), ErrBadBound (max < 1).
//
// Complexity: O(n).
func Ints(n, max int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if max < 1 {
		return nil, ErrBadBound
	}
	r := rngFromSeed(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(max) + 1
	}
	return out, nil
}

// Floats returns n pseudo-random float64 values in [0, 1).
//
// Errors: ErrNegativeLength.
func Floats(n int, seed int64) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	r := rngFromSeed(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out, nil
}

// Ascending returns 1, 2, …, n.
//
// Errors: ErrNegativeLength.
func Ascending(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out, nil
}

// Descending returns n, n−1, …, 1.
//
// Errors: ErrNegativeLength.
func Descending(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out, nil
}

// Permutation returns a deterministic shuffle of 1..n (every value exactly once).
//
// Errors: ErrNegativeLength.
func Permutation(n int, seed int64) ([]int, error) {
	out, err := Ascending(n)
	if err != nil {
		return nil, err
	}
	Shuffle(out, seed)
	return out, nil
}

// FewUnique returns n values drawn from only k distinct keys (1..k).
// Heavy duplication stresses stability checks and FirstOccurrence-style scans.
//
// Errors: ErrNegativeLength, ErrBadBound (k < 1).
func FewUnique(n, k int, seed int64) ([]int, error) {
	return Ints(n, k, seed)
}
