// SPDX-License-Identifier: MIT

package approx

import "fmt"

// Sin approximates sin(x) with the truncated Maclaurin series
//
//	x − x³/3! + x⁵/5! − …
//
// Each term is derived from the previous one:
//
//	term_k = term_{k−1} · (−x²) / ((2k)(2k+1)),  k = 1..Terms
//
// No range reduction is applied, so accuracy falls off quickly once |x|
// grows past a few radians.
//
// Errors: ErrNonFinite, ErrOverflow.
//
// Complexity: O(Terms).
func Sin(x float64, opts ...Option) (float64, error) {
	if isNonFinite(x) {
		return 0, fmt.Errorf("approx: Sin(%g): %w", x, ErrNonFinite)
	}
	o := gatherOptions(opts)

	x2 := x * x
	term, sum := x, x
	for k := 1; k <= o.terms; k++ {
		term *= -x2 / float64((2*k)*(2*k+1))
		sum += term
	}
	if isNonFinite(sum) {
		return 0, fmt.Errorf("approx: Sin(%g): %w", x, ErrOverflow)
	}

	return sum, nil
}

// Cos approximates cos(x) with the truncated Maclaurin series
//
//	1 − x²/2! + x⁴/4! − …
//
// using term_k = term_{k−1} · (−x²) / ((2k−1)(2k)). Same limits as Sin.
//
// Errors: ErrNonFinite, ErrOverflow.
func Cos(x float64, opts ...Option) (float64, error) {
	if isNonFinite(x) {
		return 0, fmt.Errorf("approx: Cos(%g): %w", x, ErrNonFinite)
	}
	o := gatherOptions(opts)

	x2 := x * x
	term, sum := 1.0, 1.0
	for k := 1; k <= o.terms; k++ {
		term *= -x2 / float64((2*k-1)*(2*k))
		sum += term
	}
	if isNonFinite(sum) {
		return 0, fmt.Errorf("approx: Cos(%g): %w", x, ErrOverflow)
	}

	return sum, nil
}

// Ln approximates the natural logarithm through the alternating series
//
//	ln(1+u) = u − u²/2 + u³/3 − …,  u = x − 1
//
// summed to LogTerms terms (default 50). The series converges only for
// 0 < x ≤ 2 and slowly near the ends; no argument transformation is
// applied, so results far from 1 are poor. Ln(2) is off by about 1e-2.
//
// Errors:
//   - ErrNonFinite: x is NaN or ±Inf.
//   - ErrDomain: x ≤ 0.
//   - ErrOverflow: the partial sums left the finite range (huge x).
func Ln(x float64, opts ...Option) (float64, error) {
	if isNonFinite(x) {
		return 0, fmt.Errorf("approx: Ln(%g): %w", x, ErrNonFinite)
	}
	if x <= 0 {
		return 0, fmt.Errorf("approx: Ln(%g): %w", x, ErrDomain)
	}
	if x == 1 {
		return 0, nil
	}
	o := gatherOptions(opts)

	u := x - 1
	term, sum := u, u
	for n := 2; n <= o.logTerms; n++ {
		term *= -u
		sum += term / float64(n)
	}
	if isNonFinite(sum) {
		return 0, fmt.Errorf("approx: Ln(%g): %w", x, ErrOverflow)
	}

	return sum, nil
}
