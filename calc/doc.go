// SPDX-License-Identifier: MIT

// Package calc holds the calculator helpers that sit next to the numeric
// approximations: integer powers, factorials, combinatorics, Fibonacci
// numbers, mean and population standard deviation, plus a one-operator
// expression evaluator.
//
// Integer results are uint64 and overflow is reported as ErrOverflow rather
// than wrapping. StdDev takes its square root from approx.Sqrt and accepts
// the same options.
package calc
