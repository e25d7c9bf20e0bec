package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoprim/internal/bench"
	"github.com/katalvlaran/algoprim/internal/scenario"
)

func newBenchCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run every sorting algorithm on the same random input and verify the results",
		Example: `  algoprim bench --size 5000 --parallel 4
  algoprim bench --algos quick,merge --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			bc := opts.Config.Bench
			algos, err := opts.Config.BenchAlgorithms()
			if err != nil {
				return out.Fail(ExitCommandError, scenario.ErrorKind(err), err)
			}

			rep, err := bench.Run(cmd.Context(), bench.Config{
				Size:       bc.Size,
				Max:        bc.Max,
				Seed:       bc.Seed,
				Parallel:   bc.Parallel,
				Algorithms: algos,
			}, opts.Log)
			if err != nil {
				return out.Fail(ExitFailure, scenario.ErrorKind(err), err)
			}

			return out.Success(renderReport(rep), rep)
		},
	}
	flags := cmd.Flags()
	flags.Int("size", 0, "input length (default from config: 2000)")
	flags.Int("max", 0, "largest generated value (default from config: 1000000)")
	flags.Int64("seed", 0, "generator seed; 0 selects the fixed default")
	flags.Int("parallel", 0, "concurrent jobs (default from config: 1)")
	flags.StringSlice("algos", nil, "algorithms to run (default: all)")

	return cmd
}

// renderReport formats a report as an aligned table.
func renderReport(rep *bench.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s  n=%d seed=%d\n", rep.RunID, rep.Size, rep.Seed)

	ok := color.New(color.FgGreen).Sprint("ok")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tDURATION\tCOMPARISONS\tSWAPS\tMOVES\tWORKLIST\tVERIFIED")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Algorithm, r.Duration, r.Stats.Comparisons, r.Stats.Swaps, r.Stats.Moves, r.Stats.MaxWorkList, ok)
	}
	_ = tw.Flush()

	return strings.TrimRight(b.String(), "\n")
}
