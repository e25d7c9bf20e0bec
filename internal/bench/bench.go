// Package bench runs every requested sorting algorithm on copies of one
// deterministic random input and verifies each output against the standard
// library sort. Jobs may run concurrently; results keep the request order.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoprim/internal/logger"
	"github.com/katalvlaran/algoprim/seqgen"
	"github.com/katalvlaran/algoprim/sorting"
)

// ErrMismatch is returned when an algorithm's output differs from the reference sort.
var ErrMismatch = errors.New("bench: output differs from reference sort")

// Config describes one benchmark run.
type Config struct {
	Size       int                 // input length
	Max        int                 // values drawn from [1, Max]
	Seed       int64               // seqgen seed; 0 selects the default
	Parallel   int                 // concurrent jobs; < 1 means 1
	Algorithms []sorting.Algorithm // empty means sorting.Algorithms()
}

// Result is the outcome of one algorithm.
type Result struct {
	Algorithm string        `json:"algorithm"`
	Duration  time.Duration `json:"duration_ns"`
	Stats     sorting.Stats `json:"stats"`
	Verified  bool          `json:"verified"`
}

// Report is the outcome of a whole run.
type Report struct {
	RunID   string   `json:"run_id"`
	Size    int      `json:"size"`
	Seed    int64    `json:"seed"`
	Results []Result `json:"results"`
}

// Run generates the input, dispatches one job per algorithm and collects the
// results. The first failing job cancels jobs that have not started yet.
func Run(ctx context.Context, cfg Config, log logger.Logger) (*Report, error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithTarget("bench")

	algos := cfg.Algorithms
	if len(algos) == 0 {
		algos = sorting.Algorithms()
	}
	parallel := cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}

	input, err := seqgen.Ints(cfg.Size, cfg.Max, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("bench: generate input: %w", err)
	}
	reference := slices.Clone(input)
	slices.Sort(reference)

	report := &Report{
		RunID:   uuid.NewString(),
		Size:    cfg.Size,
		Seed:    cfg.Seed,
		Results: make([]Result, len(algos)),
	}
	log.Info("run started",
		logger.WithField("run_id", report.RunID),
		logger.WithField("size", cfg.Size),
		logger.WithField("parallel", parallel))

	g, gctx := newSafeGroup(ctx, log, parallel)
	for i, algo := range algos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runOne(algo, input, reference)
			if err != nil {
				return err
			}
			report.Results[i] = res
			log.Debug("job finished",
				logger.WithField("algorithm", res.Algorithm),
				logger.WithField("duration", res.Duration))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", logger.WithField("error", err))
		return nil, err
	}

	log.Success("run verified", logger.WithField("algorithms", len(algos)))

	return report, nil
}

// runOne sorts a private copy of input and compares it with reference.
func runOne(algo sorting.Algorithm, input, reference []int) (Result, error) {
	work := slices.Clone(input)
	start := time.Now()
	st, err := sorting.Sort(work, algo)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %v: %w", algo, err)
	}
	if !slices.Equal(work, reference) {
		return Result{}, fmt.Errorf("%w: %v", ErrMismatch, algo)
	}

	return Result{
		Algorithm: algo.String(),
		Duration:  elapsed,
		Stats:     st,
		Verified:  true,
	}, nil
}
