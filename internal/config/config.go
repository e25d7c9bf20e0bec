// Package config loads algoprim runtime settings from defaults, an optional
// YAML file and ALGOPRIM_* environment variables, in increasing precedence.
// Command-line flags are layered on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/algoprim/approx"
	"github.com/katalvlaran/algoprim/sorting"
)

// EnvPrefix is prepended to every environment override, e.g.
// ALGOPRIM_BENCH_SIZE=5000 or ALGOPRIM_LOG_LEVEL=debug.
const EnvPrefix = "ALGOPRIM"

// FileName is the config file base name searched for in the working directory.
const FileName = "algoprim"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Sort   SortConfig   `mapstructure:"sort"`
	Bench  BenchConfig  `mapstructure:"bench"`
	Approx ApproxConfig `mapstructure:"approx"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig selects log verbosity and an optional log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SortConfig holds the default algorithm of the sort command.
type SortConfig struct {
	Algorithm string `mapstructure:"algorithm"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	Size       int      `mapstructure:"size"`
	Max        int      `mapstructure:"max"`
	Seed       int64    `mapstructure:"seed"`
	Parallel   int      `mapstructure:"parallel"`
	Algorithms []string `mapstructure:"algorithms"`
}

// ApproxConfig mirrors the approx package options.
type ApproxConfig struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Terms         int     `mapstructure:"terms"`
	LogTerms      int     `mapstructure:"log_terms"`
}

// OutputConfig selects the result format: "text" or "json".
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key with its default on v. Keys must be known
// to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("sort.algorithm", sorting.AlgoQuick.String())
	v.SetDefault("bench.size", 2000)
	v.SetDefault("bench.max", 1_000_000)
	v.SetDefault("bench.seed", 1)
	v.SetDefault("bench.parallel", 1)
	v.SetDefault("bench.algorithms", []string{})
	v.SetDefault("approx.tolerance", approx.DefaultTolerance)
	v.SetDefault("approx.max_iterations", approx.DefaultMaxIterations)
	v.SetDefault("approx.terms", approx.DefaultTrigTerms)
	v.SetDefault("approx.log_terms", approx.DefaultLogTerms)
	v.SetDefault("output.format", "text")
}

// Load resolves the configuration on v. An explicit file must exist; without
// one, ./algoprim.yaml is read when present.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func describe(file string) string {
	if file == "" {
		return FileName + ".yaml"
	}

	return file
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Sort.Algorithm); err != nil {
		return fmt.Errorf("%w: sort.algorithm: %v", ErrInvalidConfig, err)
	}
	if _, err := c.BenchAlgorithms(); err != nil {
		return fmt.Errorf("%w: bench.algorithms: %v", ErrInvalidConfig, err)
	}
	switch {
	case c.Bench.Size < 0:
		return fmt.Errorf("%w: bench.size must be >= 0, got %d", ErrInvalidConfig, c.Bench.Size)
	case c.Bench.Max < 1:
		return fmt.Errorf("%w: bench.max must be >= 1, got %d", ErrInvalidConfig, c.Bench.Max)
	case c.Bench.Parallel < 1:
		return fmt.Errorf("%w: bench.parallel must be >= 1, got %d", ErrInvalidConfig, c.Bench.Parallel)
	case !(c.Approx.Tolerance > 0):
		return fmt.Errorf("%w: approx.tolerance must be > 0, got %g", ErrInvalidConfig, c.Approx.Tolerance)
	case c.Approx.MaxIterations < 1:
		return fmt.Errorf("%w: approx.max_iterations must be >= 1, got %d", ErrInvalidConfig, c.Approx.MaxIterations)
	case c.Approx.Terms < 0:
		return fmt.Errorf("%w: approx.terms must be >= 0, got %d", ErrInvalidConfig, c.Approx.Terms)
	case c.Approx.LogTerms < 1:
		return fmt.Errorf("%w: approx.log_terms must be >= 1, got %d", ErrInvalidConfig, c.Approx.LogTerms)
	case c.Output.Format != "text" && c.Output.Format != "json":
		return fmt.Errorf("%w: output.format must be text or json, got %q", ErrInvalidConfig, c.Output.Format)
	}

	return nil
}

// SortAlgorithm returns the parsed default sort algorithm.
func (c *Config) SortAlgorithm() (sorting.Algorithm, error) {
	return sorting.ParseAlgorithm(c.Sort.Algorithm)
}

// BenchAlgorithms returns the algorithms to benchmark; an empty list means all.
func (c *Config) BenchAlgorithms() ([]sorting.Algorithm, error) {
	if len(c.Bench.Algorithms) == 0 {
		return sorting.Algorithms(), nil
	}
	out := make([]sorting.Algorithm, 0, len(c.Bench.Algorithms))
	for _, name := range c.Bench.Algorithms {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// ApproxOptions converts the approx section into package options.
// Call only on a validated Config: the option constructors panic on
// out-of-range values.
func (c *Config) ApproxOptions() []approx.Option {
	return []approx.Option{
		approx.WithTolerance(c.Approx.Tolerance),
		approx.WithMaxIterations(c.Approx.MaxIterations),
		approx.WithTerms(c.Approx.Terms),
		approx.WithLogTerms(c.Approx.LogTerms),
	}
}
