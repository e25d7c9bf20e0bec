// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"
)

// Sqrt approximates √n by Newton–Raphson iteration
//
//	estimate ← (estimate + n/estimate) / 2
//
// starting from n/2, until two consecutive estimates differ by less than the
// tolerance (WithTolerance, default 1e-6).
//
// Behavior highlights:
//   - n ∈ {0, 1} is returned unchanged.
//   - At very large magnitudes rounding can make the iteration bounce between
//     two neighbouring floats forever; revisiting the estimate from two steps
//     earlier also ends the loop.
//
// Errors:
//   - ErrNonFinite: n is NaN or ±Inf.
//   - ErrDomain: n < 0.
//   - ErrNoConvergence: MaxIterations steps elapsed first.
//
// Complexity: O(log n) steps to reach the basin, then quadratic convergence.
func Sqrt(n float64, opts ...Option) (float64, error) {
	if isNonFinite(n) {
		return 0, fmt.Errorf("approx: Sqrt(%g): %w", n, ErrNonFinite)
	}
	if n < 0 {
		return 0, fmt.Errorf("approx: Sqrt(%g): %w", n, ErrDomain)
	}
	if n == 0 || n == 1 {
		return n, nil
	}

	o := gatherOptions(opts)
	est := n / 2
	prev := math.NaN()
	var next float64
	for i := 0; i < o.maxIter; i++ {
		next = (est + n/est) / 2
		if math.Abs(est-next) < o.tolerance || next == prev {
			return next, nil
		}
		prev, est = est, next
	}

	return est, fmt.Errorf("approx: Sqrt(%g) after %d iterations: %w", n, o.maxIter, ErrNoConvergence)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
