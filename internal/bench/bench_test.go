package bench_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/internal/bench"
	"github.com/katalvlaran/algoprim/internal/logger"
	"github.com/katalvlaran/algoprim/seqgen"
	"github.com/katalvlaran/algoprim/sorting"
)

func TestRun_AllAlgorithms(t *testing.T) {
	var buf bytes.Buffer
	rep, err := bench.Run(context.Background(), bench.Config{Size: 300, Max: 50, Seed: 7, Parallel: 3}, logger.NewWithOutput("debug", &buf))
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err, "run id is a uuid")
	assert.Equal(t, 300, rep.Size)
	require.Len(t, rep.Results, len(sorting.Algorithms()))
	for i, algo := range sorting.Algorithms() {
		res := rep.Results[i]
		assert.Equal(t, algo.String(), res.Algorithm, "results keep request order")
		assert.True(t, res.Verified)
		assert.Equal(t, algo, res.Stats.Algorithm)
		assert.Positive(t, res.Stats.Comparisons)
	}
	assert.Contains(t, buf.String(), "[bench] run started")
	assert.Contains(t, buf.String(), "run verified")
}

func TestRun_SubsetSequential(t *testing.T) {
	algos := []sorting.Algorithm{sorting.AlgoMerge, sorting.AlgoQuick}
	rep, err := bench.Run(context.Background(), bench.Config{Size: 64, Max: 10, Algorithms: algos}, nil)
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, "merge", rep.Results[0].Algorithm)
	assert.Equal(t, "quick", rep.Results[1].Algorithm)
}

func TestRun_DeterministicCounters(t *testing.T) {
	cfg := bench.Config{Size: 200, Max: 1000, Seed: seqgen.Derive(3, 1), Algorithms: []sorting.Algorithm{sorting.AlgoInsertion}}
	a, err := bench.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := bench.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Results[0].Stats, b.Results[0].Stats)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_EmptyInput(t *testing.T) {
	rep, err := bench.Run(context.Background(), bench.Config{Size: 0, Max: 1}, nil)
	require.NoError(t, err)
	for _, res := range rep.Results {
		assert.True(t, res.Verified)
	}
}

func TestRun_BadInput(t *testing.T) {
	_, err := bench.Run(context.Background(), bench.Config{Size: 10, Max: 0}, nil)
	assert.ErrorIs(t, err, seqgen.ErrBadBound)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, err := bench.Run(context.Background(), bench.Config{Size: 10, Max: 5, Algorithms: []sorting.Algorithm{99}}, nil)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, bench.Config{Size: 10, Max: 5}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
