package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/approx"
	"github.com/katalvlaran/algoprim/internal/config"
	"github.com/katalvlaran/algoprim/sorting"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algoprim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "quick", cfg.Sort.Algorithm)
	assert.Equal(t, 2000, cfg.Bench.Size)
	assert.Equal(t, 1_000_000, cfg.Bench.Max)
	assert.Equal(t, int64(1), cfg.Bench.Seed)
	assert.Equal(t, 1, cfg.Bench.Parallel)
	assert.Equal(t, approx.DefaultTolerance, cfg.Approx.Tolerance)
	assert.Equal(t, approx.DefaultMaxIterations, cfg.Approx.MaxIterations)
	assert.Equal(t, approx.DefaultTrigTerms, cfg.Approx.Terms)
	assert.Equal(t, approx.DefaultLogTerms, cfg.Approx.LogTerms)
	assert.Equal(t, "text", cfg.Output.Format)

	algos, err := cfg.BenchAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, sorting.Algorithms(), algos)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
sort:
  algorithm: MergeSort
bench:
  size: 300
  parallel: 4
  algorithms: [quick, merge]
approx:
  tolerance: 1.0e-9
  terms: 6
`)
	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 300, cfg.Bench.Size)
	assert.Equal(t, 4, cfg.Bench.Parallel)
	assert.Equal(t, 1e-9, cfg.Approx.Tolerance)
	assert.Equal(t, 6, cfg.Approx.Terms)
	assert.Equal(t, approx.DefaultLogTerms, cfg.Approx.LogTerms, "unset keys keep defaults")

	algo, err := cfg.SortAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, sorting.AlgoMerge, algo)

	algos, err := cfg.BenchAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []sorting.Algorithm{sorting.AlgoQuick, sorting.AlgoMerge}, algos)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bench:\n  size: 300\n")
	t.Setenv("ALGOPRIM_BENCH_SIZE", "900")
	t.Setenv("ALGOPRIM_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.Bench.Size)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"algorithm":  "sort:\n  algorithm: bogo\n",
		"bench algo": "bench:\n  algorithms: [quick, shell]\n",
		"size":       "bench:\n  size: -1\n",
		"max":        "bench:\n  max: 0\n",
		"parallel":   "bench:\n  parallel: 0\n",
		"tolerance":  "approx:\n  tolerance: 0\n",
		"iterations": "approx:\n  max_iterations: 0\n",
		"terms":      "approx:\n  terms: -2\n",
		"log terms":  "approx:\n  log_terms: 0\n",
		"format":     "output:\n  format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(viper.New(), writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestApproxOptions(t *testing.T) {
	cfg, err := config.Load(viper.New(), writeFile(t, "approx:\n  terms: 0\n"))
	require.NoError(t, err)

	opts := cfg.ApproxOptions()
	require.Len(t, opts, 4)

	s, err := approx.Sin(0.3, opts...)
	require.NoError(t, err)
	assert.Equal(t, 0.3, s, "terms: 0 keeps only the leading term")
}
