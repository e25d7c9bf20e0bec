// SPDX-License-Identifier: MIT
// Package approx: sentinel error set.
// Every routine returns one of these (possibly wrapped with the offending
// argument); tests and callers match them via errors.Is. No routine panics on
// user-supplied input; panics are reserved for invalid Option constructors.

package approx

import "errors"

var (
	// ErrDomain is returned for arguments outside the function's real domain:
	// n < 0 for Sqrt, x ≤ 0 for Ln.
	ErrDomain = errors.New("approx: argument outside domain")

	// ErrNonFinite is returned when the argument is NaN or ±Inf.
	// No routine lets a NaN propagate silently.
	ErrNonFinite = errors.New("approx: argument is NaN or Inf")

	// ErrNoConvergence is returned by Sqrt when MaxIterations elapse before the
	// estimate settles within Tolerance.
	ErrNoConvergence = errors.New("approx: iteration did not converge")

	// ErrOverflow is returned when a series partial sum leaves the finite range
	// (e.g. Sin(1e200), where x² already overflows).
	ErrOverflow = errors.New("approx: series overflowed")
)
