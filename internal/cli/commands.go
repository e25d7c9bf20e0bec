package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoprim/internal/logger"
	"github.com/katalvlaran/algoprim/internal/scenario"
	"github.com/katalvlaran/algoprim/sorting"
)

// parseFloats converts positional arguments to float64 values.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("argument %d", i+1), err)
		}
		out[i] = v
	}

	return out, nil
}

// SortResult is the JSON payload of the sort command.
type SortResult struct {
	Sorted []float64     `json:"sorted"`
	Stats  sorting.Stats `json:"stats"`
}

func newSortCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [flags] <numbers...>",
		Short: "Sort numbers with one of the classic algorithms",
		Example: `  algoprim sort --algo bubble 5 3 1 4 2
  algoprim sort --algo merge -v -- -1 3.5 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			algo, err := opts.Config.SortAlgorithm()
			if err != nil {
				return out.Fail(ExitCommandError, scenario.ErrorKind(err), err)
			}

			st, err := sorting.Sort(values, algo)
			if err != nil {
				return out.Fail(ExitFailure, scenario.ErrorKind(err), err)
			}
			opts.Log.Debug("sorted", logger.WithField("algorithm", algo), logger.WithField("n", len(values)))

			text := fmt.Sprint(values)
			if algo == sorting.AlgoBubble {
				text += " swaps=" + strconv.Itoa(st.Swaps)
			}
			out.VerboseLog("algorithm=%s comparisons=%d swaps=%d moves=%d max_work_list=%d",
				st.Algorithm, st.Comparisons, st.Swaps, st.Moves, st.MaxWorkList)

			return out.Success(text, SortResult{Sorted: values, Stats: st})
		},
	}
	cmd.Flags().String("algo", "", "algorithm: bubble|selection|insertion|quick|merge (default from config: quick)")

	return cmd
}

// stepResult is the JSON payload of the search, approx and calc commands.
type stepResult struct {
	Step   string `json:"step"`
	Result string `json:"result"`
}

// runStep validates and executes a single scenario step, mapping failures
// to exit codes.
func runStep(cmd *cobra.Command, opts *RootOptions, step scenario.Step) error {
	out := opts.formatter(cmd)
	if err := step.Validate(); err != nil {
		return out.Fail(ExitCommandError, "usage", err)
	}
	res, err := scenario.Execute(step, opts.Config.ApproxOptions()...)
	if err != nil {
		code := ExitFailure
		if errors.Is(err, scenario.ErrInvalidScenario) {
			code = ExitCommandError
		}
		return out.Fail(code, scenario.ErrorKind(err), err)
	}

	return out.Success(res, stepResult{Step: step.Label(), Result: res})
}

func newSearchCommand(opts *RootOptions) *cobra.Command {
	var (
		kind   string
		target float64
	)
	cmd := &cobra.Command{
		Use:   "search [flags] <sorted numbers...>",
		Short: "Find the index of --target (-1 when absent)",
		Long: `Search a sequence for --target. The binary kinds assume the numbers are
already sorted and do not check it; "first" returns the leftmost match.`,
		Example: "  algoprim search --kind first --target 2 1 2 2 2 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			return runStep(cmd, opts, scenario.Step{Op: scenario.OpSearch, Kind: kind, Input: values, Target: &target})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", scenario.SearchBinary, "linear|binary|recursive|first")
	cmd.Flags().Float64Var(&target, "target", 0, "value to look for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newApproxCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "approx <sqrt|sin|cos|ln> <x>",
		Short:     "Approximate a square root, sine, cosine or natural log",
		Example:   "  algoprim approx sqrt 2\n  algoprim approx ln 1.5 --log-terms 20",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"sqrt", "sin", "cos", "ln"},
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			return runStep(cmd, opts, scenario.Step{Op: scenario.OpApprox, Func: args[0], X: &x[0]})
		},
	}
}

func newCalcCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <power|factorial|comb|perm|fib|mean|stddev|eval> <args...>",
		Short: "Calculator helpers: powers, combinatorics, Fibonacci, statistics",
		Example: `  algoprim calc comb 5 2
  algoprim calc stddev 2 4 6 8 10 12 14
  algoprim calc eval 3 ^ 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := scenario.Step{Op: scenario.OpCalc, Func: args[0]}
			rest := args[1:]
			if step.Func == "eval" {
				if len(rest) != 3 {
					return NewExitError(ExitCommandError, "eval takes <a> <op> <b>")
				}
				step.Operator = rest[1]
				rest = []string{rest[0], rest[2]}
			}
			values, err := parseFloats(rest)
			if err != nil {
				return err
			}
			step.Args = values
			return runStep(cmd, opts, step)
		},
	}
}
