// SPDX-License-Identifier: MIT

// Package approx computes scalar approximations without the math package's
// transcendental functions: square root by Newton–Raphson iteration, sine,
// cosine and natural log by truncated Taylor series.
//
// 🚀 What is approx?
//
//	Four small numeric kernels that show how classic approximations behave,
//	limits included:
//	  • Sqrt – Newton–Raphson from n/2, absolute tolerance 1e-6
//	  • Sin  – Maclaurin series, leading term + 10 recurrence terms
//	  • Cos  – Maclaurin series, leading term + 10 recurrence terms
//	  • Ln   – ln(1+u) alternating series, 50 terms
//
// ✨ Key features:
//   - Explicit failures: domain errors (Sqrt(-1), Ln(0)) and non-finite input
//     come back as sentinel errors, never as a silent NaN.
//   - Tunable: WithTolerance, WithMaxIterations, WithTerms, WithLogTerms.
//   - Deterministic and allocation-free.
//
// Known limitations (kept on purpose):
//   - Sin/Cos perform no range reduction; with the default term count the
//     error grows rapidly beyond |x| ≈ 2π.
//   - Ln is only accurate near 1. It converges for 0 < x ≤ 2 (slowly at
//     the ends) and diverges for x > 2.
//   - Sqrt's tolerance is absolute, which is loose for n ≪ 1.
//
// ⚙️ Usage:
//
//	r, err := approx.Sqrt(16)          // ≈ 4
//	if errors.Is(err, approx.ErrDomain) {
//		// negative input
//	}
//	s, _ := approx.Sin(0.5, approx.WithTerms(6))
//
// Errors:
//   - ErrDomain         argument outside the real domain
//   - ErrNonFinite      NaN or ±Inf argument
//   - ErrNoConvergence  Sqrt exceeded MaxIterations
//   - ErrOverflow       a series sum left the finite range
package approx
