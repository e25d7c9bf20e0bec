package sorting_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/sorting"
)

// TestParseAlgorithm covers accepted spellings and the unknown-name error.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]sorting.Algorithm{
		"bubble":     sorting.AlgoBubble,
		"Selection":  sorting.AlgoSelection,
		"insertion":  sorting.AlgoInsertion,
		"QuickSort":  sorting.AlgoQuick,
		"quick":      sorting.AlgoQuick,
		"merge-sort": sorting.AlgoMerge,
		" merge ":    sorting.AlgoMerge,
	}
	for in, want := range cases {
		got, err := sorting.ParseAlgorithm(in)
		require.NoError(t, err, "%q should parse", in)
		assert.Equal(t, want, got, "%q", in)
	}

	for _, bad := range []string{"", "sort", "heap", "bogo"} {
		_, err := sorting.ParseAlgorithm(bad)
		assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm, "%q must be rejected", bad)
	}
}

// TestAlgorithm_StringRoundTrip ensures String output parses back.
func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, a := range sorting.Algorithms() {
		got, err := sorting.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Algorithm(42)", sorting.Algorithm(42).String())
}

// TestAlgorithm_Stable lists which algorithms preserve input order of ties.
func TestAlgorithm_Stable(t *testing.T) {
	assert.True(t, sorting.AlgoBubble.Stable())
	assert.True(t, sorting.AlgoInsertion.Stable())
	assert.True(t, sorting.AlgoMerge.Stable())
	assert.False(t, sorting.AlgoSelection.Stable())
	assert.False(t, sorting.AlgoQuick.Stable())
}

// TestSort_Dispatcher verifies routing, per-call stats and the outer sink.
func TestSort_Dispatcher(t *testing.T) {
	var outer sorting.Stats
	for _, a := range sorting.Algorithms() {
		seq := []int{5, 3, 1, 4, 2}
		st, err := sorting.Sort(seq, a, sorting.WithStats(&outer))
		require.NoError(t, err, "%v", a)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, seq, "%v", a)
		assert.Equal(t, a, st.Algorithm)
		assert.Positive(t, st.Comparisons, "%v compares at least once", a)
	}
	assert.Equal(t, sorting.AlgoMerge, outer.Algorithm, "outer sink records the last algorithm")
	assert.Greater(t, outer.Comparisons, 0)

	st, err := sorting.Sort([]int{2, 1}, sorting.AlgoBubble)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Swaps)

	_, err = sorting.Sort([]int{2, 1}, sorting.Algorithm(99))
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

// TestIsSorted covers ordering, duplicates and NaN.
func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted([]int{}))
	assert.True(t, sorting.IsSorted([]int{1}))
	assert.True(t, sorting.IsSorted([]int{1, 2, 2, 3, 4}))
	assert.False(t, sorting.IsSorted([]int{5, 3, 1, 4, 2}))
	assert.False(t, sorting.IsSorted([]float64{1, nan(), 3}))
	assert.False(t, sorting.IsSorted([]float64{nan()}))
}

// TestAlgorithm_JSON checks names travel through encoding/json.
func TestAlgorithm_JSON(t *testing.T) {
	raw, err := json.Marshal(sorting.Stats{Algorithm: sorting.AlgoMerge, Comparisons: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"merge","comparisons":3,"swaps":0,"moves":0,"max_work_list":0}`, string(raw))

	var got struct {
		Algo sorting.Algorithm `json:"algo"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"algo":"Insertion Sort"}`), &got))
	assert.Equal(t, sorting.AlgoInsertion, got.Algo)

	assert.Error(t, json.Unmarshal([]byte(`{"algo":"bogo"}`), &got))
	_, err = json.Marshal(sorting.Algorithm(42))
	assert.Error(t, err)
}

func nan() float64 { return math.NaN() }
