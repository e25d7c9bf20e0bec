package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoprim/internal/logger"
	"github.com/katalvlaran/algoprim/internal/scenario"
)

func newRunCommand(opts *RootOptions) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Execute YAML scenarios and report each step",
		Long: `Execute one or more YAML scenarios. Each step calls a primitive and may
assert on its output (expect) or on the error kind (expect_error).
The command exits with status 1 when any step fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			runner := scenario.Runner{Log: opts.Log, Approx: opts.Config.ApproxOptions()}

			failed := 0
			for _, path := range args {
				sc, err := scenario.LoadFile(path)
				if err != nil {
					return out.Fail(ExitCommandError, scenario.ErrorKind(err), err)
				}
				opts.Log.Debug("scenario loaded", logger.WithField("path", path), logger.WithField("steps", len(sc.Steps)))

				res, err := runner.Run(cmd.Context(), sc)
				if err != nil {
					return out.Fail(ExitFailure, scenario.ErrorKind(err), err)
				}
				if err = scenario.Render(out.Writer, res, out.Format, !noColor); err != nil {
					return err
				}
				failed += res.Failed
			}
			if failed > 0 {
				return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d step(s) failed", failed), Reported: true}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured PASS/FAIL markers")

	return cmd
}
