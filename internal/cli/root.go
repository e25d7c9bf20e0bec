// Package cli implements the algoprim command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/algoprim/internal/config"
	"github.com/katalvlaran/algoprim/internal/logger"
)

// RootOptions holds global flags and the state resolved before a subcommand runs.
type RootOptions struct {
	ConfigFile string
	Format     string
	LogLevel   string
	Verbose    bool
	Version    string

	Config *config.Config
	Log    logger.Logger
}

// flagKeys binds command-line flags to configuration keys. A flag only
// overrides the file/environment value when it was set explicitly.
var flagKeys = map[string]string{
	"format":         "output.format",
	"log-level":      "log.level",
	"tolerance":      "approx.tolerance",
	"max-iterations": "approx.max_iterations",
	"terms":          "approx.terms",
	"log-terms":      "approx.log_terms",
	"algo":           "sort.algorithm",
	"size":           "bench.size",
	"max":            "bench.max",
	"seed":           "bench.seed",
	"parallel":       "bench.parallel",
	"algos":          "bench.algorithms",
}

// NewRootCommand creates the root command for the algoprim CLI.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{Version: version}

	cmd := &cobra.Command{
		Use:   "algoprim",
		Short: "Algorithm primitives: sorting, searching and numeric approximation",
		Long: `algoprim exposes classic sorting algorithms, binary and linear search and
series/Newton approximations from the command line.

Settings come from algoprim.yaml, ALGOPRIM_* environment variables and flags,
in increasing precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default: ./algoprim.yaml when present)")
	flags.StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (implies --log-level debug)")
	flags.Float64("tolerance", 0, "Sqrt convergence tolerance")
	flags.Int("max-iterations", 0, "Sqrt iteration cap")
	flags.Int("terms", 0, "sin/cos recurrence terms after the leading term")
	flags.Int("log-terms", 0, "ln series terms")

	cmd.AddCommand(newSortCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newApproxCommand(opts))
	cmd.AddCommand(newCalcCommand(opts))
	cmd.AddCommand(newBenchCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// resolve loads configuration, layers explicitly set flags on top and builds
// the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	v := viper.New()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return WrapExitError(ExitCommandError, "bind flags", bindErr)
	}

	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load(v, o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load configuration", err)
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	o.Config = cfg
	o.Log = logger.New(cfg.Log.File, cfg.Log.Level)
	o.Log.Debug("configuration resolved",
		logger.WithField("file", v.ConfigFileUsed()),
		logger.WithField("format", cfg.Output.Format))

	return nil
}

// formatter builds the output formatter for cmd from the resolved config.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Config.Output.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
