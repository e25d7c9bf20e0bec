// SPDX-License-Identifier: MIT

// Package approx: functional configuration for the iterative and series
// routines. This file defines:
//   - documented defaults (constants),
//   - Option / Options,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper.

package approx

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute convergence threshold for Sqrt:
	// iteration stops once |estimate_k − estimate_{k+1}| < DefaultTolerance.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps Newton steps. Quadratic convergence needs far
	// fewer; the cap only matters for pathological tolerances.
	DefaultMaxIterations = 10_000

	// DefaultTrigTerms is the number of recurrence terms summed after the
	// leading term of the sine/cosine Maclaurin series.
	DefaultTrigTerms = 10

	// DefaultLogTerms is the total number of terms of the ln(1+u) series.
	DefaultLogTerms = 50
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid = "approx: WithTolerance: eps must be finite and > 0"
	panicMaxIterInvalid   = "approx: WithMaxIterations: n must be >= 1"
	panicTermsInvalid     = "approx: WithTerms: n must be >= 0"
	panicLogTermsInvalid  = "approx: WithLogTerms: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error), never on routine inputs.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	tolerance float64 // > 0; DefaultTolerance
	maxIter   int     // >= 1; DefaultMaxIterations
	terms     int     // >= 0; DefaultTrigTerms
	logTerms  int     // >= 1; DefaultLogTerms
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIterations,
		terms:     DefaultTrigTerms,
		logTerms:  DefaultLogTerms,
	}
}

// Tolerance reports the configured convergence threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations reports the configured Newton step cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Terms reports the configured sine/cosine recurrence term count.
func (o Options) Terms() int { return o.terms }

// LogTerms reports the configured ln series length.
func (o Options) LogTerms() int { return o.logTerms }

// WithTolerance sets the absolute convergence threshold used by Sqrt.
//
// Because the threshold is absolute, Sqrt of very small n (say n < 1e-12)
// stops while the estimate is still far from the root in relative terms;
// tighten eps for such inputs.
//
// Panics if eps is NaN, ±Inf or ≤ 0.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// WithMaxIterations caps the number of Newton steps taken by Sqrt.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTerms sets how many recurrence terms Sin and Cos add after the leading
// term. Zero keeps only the leading term (x for Sin, 1 for Cos).
// Panics if n < 0.
func WithTerms(n int) Option {
	if n < 0 {
		panic(panicTermsInvalid)
	}

	return func(o *Options) { o.terms = n }
}

// WithLogTerms sets the total number of ln(1+u) series terms used by Ln.
// Panics if n < 1.
func WithLogTerms(n int) Option {
	if n < 1 {
		panic(panicLogTermsInvalid)
	}

	return func(o *Options) { o.logTerms = n }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
