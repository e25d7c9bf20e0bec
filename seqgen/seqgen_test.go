package seqgen_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/seqgen"
)

// TestInts_DeterministicAndBounded checks seed determinism and the value range.
func TestInts_DeterministicAndBounded(t *testing.T) {
	a, err := seqgen.Ints(500, 100, 42)
	require.NoError(t, err)
	b, err := seqgen.Ints(500, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must yield the same sequence")

	c, err := seqgen.Ints(500, 100, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should differ")

	for i, v := range a {
		assert.GreaterOrEqual(t, v, 1, "index %d", i)
		assert.LessOrEqual(t, v, 100, "index %d", i)
	}
}

// TestInts_ZeroSeedPolicy verifies seed 0 maps to the fixed default seed.
func TestInts_ZeroSeedPolicy(t *testing.T) {
	a, err := seqgen.Ints(50, 1000, 0)
	require.NoError(t, err)
	b, err := seqgen.Ints(50, 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerators_Errors covers the sentinel errors.
func TestGenerators_Errors(t *testing.T) {
	_, err := seqgen.Ints(-1, 10, 0)
	assert.ErrorIs(t, err, seqgen.ErrNegativeLength)
	_, err = seqgen.Ints(3, 0, 0)
	assert.ErrorIs(t, err, seqgen.ErrBadBound)
	_, err = seqgen.Floats(-2, 0)
	assert.ErrorIs(t, err, seqgen.ErrNegativeLength)
	_, err = seqgen.Ascending(-1)
	assert.ErrorIs(t, err, seqgen.ErrNegativeLength)
	_, err = seqgen.Descending(-1)
	assert.ErrorIs(t, err, seqgen.ErrNegativeLength)
	_, err = seqgen.Permutation(-1, 0)
	assert.ErrorIs(t, err, seqgen.ErrNegativeLength)
}

// TestOrderedGenerators checks Ascending and Descending contents.
func TestOrderedGenerators(t *testing.T) {
	asc, err := seqgen.Ascending(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, asc)

	desc, err := seqgen.Descending(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, desc)

	empty, err := seqgen.Ascending(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestPermutation verifies every value 1..n appears exactly once.
func TestPermutation(t *testing.T) {
	p, err := seqgen.Permutation(64, 5)
	require.NoError(t, err)
	sorted := slices.Clone(p)
	slices.Sort(sorted)
	want, _ := seqgen.Ascending(64)
	assert.Equal(t, want, sorted)
	assert.NotEqual(t, want, p, "a 64-element shuffle should move something")
}

// TestFloats_Range checks the half-open unit interval.
func TestFloats_Range(t *testing.T) {
	fs, err := seqgen.Floats(200, 9)
	require.NoError(t, err)
	for _, f := range fs {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

// TestDerive checks stream independence and stability.
func TestDerive(t *testing.T) {
	assert.Equal(t, seqgen.Derive(7, 1), seqgen.Derive(7, 1))
	assert.NotEqual(t, seqgen.Derive(7, 1), seqgen.Derive(7, 2))
	assert.NotEqual(t, seqgen.Derive(7, 1), seqgen.Derive(8, 1))
	assert.Equal(t, seqgen.Derive(0, 3), seqgen.Derive(1, 3), "zero parent uses the default seed")
}

// TestShuffle_Trivial ensures tiny inputs are left alone.
func TestShuffle_Trivial(t *testing.T) {
	one := []string{"x"}
	seqgen.Shuffle(one, 3)
	assert.Equal(t, []string{"x"}, one)
	seqgen.Shuffle([]int(nil), 3)
}

// TestFewUnique checks that only k distinct keys appear.
func TestFewUnique(t *testing.T) {
	xs, err := seqgen.FewUnique(300, 3, 11)
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, v := range xs {
		seen[v] = true
	}
	assert.LessOrEqual(t, len(seen), 3)
	for v := range seen {
		assert.Contains(t, []int{1, 2, 3}, v)
	}

	_, err = seqgen.FewUnique(5, 0, 0)
	assert.ErrorIs(t, err, seqgen.ErrBadBound)
}
