// SPDX-License-Identifier: MIT

// Package seqgen generates deterministic test and benchmark sequences.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors.
//
// Seed policy: seed == 0 selects a fixed default seed, any other value is used
// verbatim. Use Derive to obtain independent streams from one base seed
// (e.g. one stream per benchmark job).
//
// Concurrency:
//   - Functions build their own *rand.Rand per call and are safe to call from
//     multiple goroutines.
package seqgen

import (
	"errors"
	"math/rand"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

var (
	// ErrNegativeLength is returned when a requested length is negative.
	ErrNegativeLength = errors.New("seqgen: length must be non-negative")

	// ErrBadBound is returned when an upper value bound is below 1.
	ErrBadBound = errors.New("seqgen: upper bound must be >= 1")
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Derive mixes a parent seed and a stream identifier into a new 64-bit seed.
// Small changes in either input produce unrelated outputs, so callers may use
// consecutive stream ids (0, 1, 2, …) for independent sequences.
//
// The mixing is a SplitMix64-style finalizer (Vigna 2014 constants).
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Shuffle performs an in-place Fisher–Yates shuffle of seq.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](seq []T, seed int64) {
	n := len(seq)
	if n <= 1 {
		return
	}
	r := rngFromSeed(seed)
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
