// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrNegative is returned when a non-negative integer argument was required.
	ErrNegative = errors.New("calc: negative argument")

	// ErrOverflow is returned when an integer result does not fit in uint64.
	ErrOverflow = errors.New("calc: result overflows uint64")

	// ErrInvalidArgs is returned for combinatorial arguments outside 0 ≤ r ≤ n.
	ErrInvalidArgs = errors.New("calc: invalid arguments")

	// ErrEmpty is returned by statistics over an empty sample.
	ErrEmpty = errors.New("calc: empty input")

	// ErrDivisionByZero is returned by Evaluate for x / 0.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrUnknownOperator is returned by Evaluate for an unsupported operator.
	ErrUnknownOperator = errors.New("calc: unknown operator")
)
