// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/algoprim/approx"
)

const (
	maxFactorial = 20 // 21! > MaxUint64
	maxFibonacci = 93 // F(94) > MaxUint64
)

// Power returns base raised to the integer exponent exp; negative exponents
// return the reciprocal. Power(x, 0) is 1 for every x.
//
// Complexity: O(log |exp|) multiplications (square-and-multiply).
func Power(base float64, exp int) float64 {
	neg := exp < 0
	e := uint64(exp)
	if neg {
		e = -e
	}

	result := 1.0
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}
	if neg {
		return 1 / result
	}

	return result
}

// Factorial returns n!.
//
// Errors: ErrNegative (n < 0), ErrOverflow (n > 20).
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("calc: Factorial(%d): %w", n, ErrNegative)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("calc: Factorial(%d): %w", n, ErrOverflow)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}

	return result, nil
}

// Combinations returns C(n, r) = n! / (r!(n−r)!).
//
// The value is built multiplicatively as C(n−r+i, i) for i = 1..r with a
// 128-bit intermediate, so results near MaxUint64 are computed exactly even
// though n! itself would overflow.
//
// Errors: ErrInvalidArgs (n < 0, r < 0 or r > n), ErrOverflow.
func Combinations(n, r int) (uint64, error) {
	if err := checkChoose("Combinations", n, r); err != nil {
		return 0, err
	}
	if r > n-r {
		r = n - r
	}

	result := uint64(1)
	base := uint64(n - r)
	var hi, lo uint64
	for i := uint64(1); i <= uint64(r); i++ {
		hi, lo = bits.Mul64(result, base+i)
		if hi >= i {
			return 0, fmt.Errorf("calc: Combinations(%d, %d): %w", n, r, ErrOverflow)
		}
		result, _ = bits.Div64(hi, lo, i)
	}

	return result, nil
}

// Permutations returns P(n, r) = n! / (n−r)!.
//
// Errors: ErrInvalidArgs (n < 0, r < 0 or r > n), ErrOverflow.
func Permutations(n, r int) (uint64, error) {
	if err := checkChoose("Permutations", n, r); err != nil {
		return 0, err
	}

	result := uint64(1)
	var hi uint64
	for k := uint64(n - r + 1); k <= uint64(n); k++ {
		hi, result = bits.Mul64(result, k)
		if hi != 0 {
			return 0, fmt.Errorf("calc: Permutations(%d, %d): %w", n, r, ErrOverflow)
		}
	}

	return result, nil
}

func checkChoose(name string, n, r int) error {
	if n < 0 || r < 0 || r > n {
		return fmt.Errorf("calc: %s(%d, %d): %w", name, n, r, ErrInvalidArgs)
	}

	return nil
}

// Fibonacci returns F(n) with F(0) = 0, F(1) = 1, computed iteratively.
//
// Errors: ErrNegative (n < 0), ErrOverflow (n > 93).
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("calc: Fibonacci(%d): %w", n, ErrNegative)
	}
	if n > maxFibonacci {
		return 0, fmt.Errorf("calc: Fibonacci(%d): %w", n, ErrOverflow)
	}
	if n <= 1 {
		return uint64(n), nil
	}
	a, b := uint64(0), uint64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// Mean returns the arithmetic mean of xs.
//
// Errors: ErrEmpty.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs)), nil
}

// StdDev returns the population standard deviation of xs. The square root
// comes from approx.Sqrt configured by opts.
//
// Errors: ErrEmpty, plus any approx error (e.g. ErrNonFinite when xs holds
// NaN or ±Inf).
func StdDev(xs []float64, opts ...approx.Option) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	var sq, d float64
	for _, x := range xs {
		d = x - mean
		sq += d * d
	}

	sd, err := approx.Sqrt(sq/float64(len(xs)), opts...)
	if err != nil {
		return 0, fmt.Errorf("calc: StdDev: %w", err)
	}

	return sd, nil
}

// Evaluate applies a single binary operator: '+', '-', '*', '/' or '^'.
// For '^' the exponent must be an integer value and Power is used.
//
// Errors: ErrDivisionByZero, ErrInvalidArgs (non-integer exponent),
// ErrUnknownOperator.
func Evaluate(a float64, op rune, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case '^':
		if b != math.Trunc(b) || math.Abs(b) > math.MaxInt32 {
			return 0, fmt.Errorf("calc: exponent %g: %w", b, ErrInvalidArgs)
		}
		return Power(a, int(b)), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}
