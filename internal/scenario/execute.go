package scenario

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/algoprim/approx"
	"github.com/katalvlaran/algoprim/calc"
	"github.com/katalvlaran/algoprim/search"
	"github.com/katalvlaran/algoprim/sorting"
)

// Execute performs one validated step and renders its result:
//   - sort:   the sorted slice, plus " swaps=N" for bubble
//   - search: the index (-1 when absent)
//   - approx: the value with six decimals
//   - calc:   integers as is, stddev with six decimals, other floats shortest form
//
// The step's Input is copied, never mutated. approxOpts configure approx
// routines and calc stddev.
func Execute(s Step, approxOpts ...approx.Option) (string, error) {
	switch s.Op {
	case OpSort:
		return execSort(s)
	case OpSearch:
		return execSearch(s), nil
	case OpApprox:
		return execApprox(s, approxOpts)
	case OpCalc:
		return execCalc(s, approxOpts)
	default:
		return "", fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, s.Op)
	}
}

func execSort(s Step) (string, error) {
	algo, err := sorting.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return "", err
	}
	seq := append([]float64(nil), s.Input...)
	st, err := sorting.Sort(seq, algo)
	if err != nil {
		return "", err
	}
	out := fmt.Sprint(seq)
	if algo == sorting.AlgoBubble {
		out += " swaps=" + strconv.Itoa(st.Swaps)
	}

	return out, nil
}

func execSearch(s Step) string {
	var idx int
	switch s.Kind {
	case SearchLinear:
		idx = search.LinearSearch(s.Input, *s.Target)
	case SearchBinary:
		idx = search.BinarySearch(s.Input, *s.Target)
	case SearchRecursive:
		idx = search.RecursiveBinarySearch(s.Input, *s.Target, 0, len(s.Input)-1)
	default:
		idx = search.FirstOccurrence(s.Input, *s.Target)
	}

	return strconv.Itoa(idx)
}

func execApprox(s Step, opts []approx.Option) (string, error) {
	var fn func(float64, ...approx.Option) (float64, error)
	switch s.Func {
	case "sqrt":
		fn = approx.Sqrt
	case "sin":
		fn = approx.Sin
	case "cos":
		fn = approx.Cos
	default:
		fn = approx.Ln
	}
	v, err := fn(*s.X, opts...)
	if err != nil {
		return "", err
	}

	return fixed(v), nil
}

func execCalc(s Step, opts []approx.Option) (string, error) {
	var (
		u   uint64
		f   float64
		err error
	)
	switch s.Func {
	case "power":
		var e int
		if e, err = toInt(s.Args[1]); err != nil {
			return "", err
		}
		return shortest(calc.Power(s.Args[0], e)), nil
	case "factorial", "fib":
		var n int
		if n, err = toInt(s.Args[0]); err != nil {
			return "", err
		}
		if s.Func == "fib" {
			u, err = calc.Fibonacci(n)
		} else {
			u, err = calc.Factorial(n)
		}
	case "comb", "perm":
		var n, r int
		if n, err = toInt(s.Args[0]); err != nil {
			return "", err
		}
		if r, err = toInt(s.Args[1]); err != nil {
			return "", err
		}
		if s.Func == "comb" {
			u, err = calc.Combinations(n, r)
		} else {
			u, err = calc.Permutations(n, r)
		}
	case "mean":
		if f, err = calc.Mean(s.Args); err != nil {
			return "", err
		}
		return shortest(f), nil
	case "stddev":
		if f, err = calc.StdDev(s.Args, opts...); err != nil {
			return "", err
		}
		return fixed(f), nil
	case "eval":
		if f, err = calc.Evaluate(s.Args[0], []rune(s.Operator)[0], s.Args[1]); err != nil {
			return "", err
		}
		return shortest(f), nil
	default:
		return "", fmt.Errorf("%w: unknown calc func %q", ErrInvalidScenario, s.Func)
	}
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(u, 10), nil
}

// toInt accepts only integral values that fit in an int32.
func toInt(v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("scenario: %g is not an integer: %w", v, calc.ErrInvalidArgs)
	}

	return int(v), nil
}

func fixed(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func shortest(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// errorKinds maps sentinel errors to the short names used by expect_error
// and by the CLI's JSON error codes.
var errorKinds = []struct {
	err  error
	kind string
}{
	{sorting.ErrIncomparable, "incomparable"},
	{sorting.ErrRangeOutOfBounds, "out_of_range"},
	{sorting.ErrUnknownAlgorithm, "unknown_algorithm"},
	{approx.ErrDomain, "domain"},
	{approx.ErrNonFinite, "non_finite"},
	{approx.ErrNoConvergence, "no_convergence"},
	{approx.ErrOverflow, "overflow"},
	{calc.ErrOverflow, "overflow"},
	{calc.ErrNegative, "negative"},
	{calc.ErrInvalidArgs, "invalid_args"},
	{calc.ErrEmpty, "empty"},
	{calc.ErrDivisionByZero, "division_by_zero"},
	{calc.ErrUnknownOperator, "unknown_operator"},
	{ErrInvalidScenario, "invalid_scenario"},
}

// ErrorKind returns the short name of the sentinel wrapped by err, "" for
// nil and "error" for anything unrecognised.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return "error"
}
