// Package scenario loads YAML scenarios that drive the algorithm primitives
// step by step, runs them and renders the outcome as text or JSON.
//
// A scenario looks like:
//
//	name: classic
//	description: reference properties
//	steps:
//	  - op: sort
//	    algorithm: bubble
//	    input: [5, 3, 1, 4, 2]
//	    expect: "[1 2 3 4 5] swaps=7"
//	  - op: approx
//	    func: sqrt
//	    x: -1
//	    expect_error: domain
//
// YAML's .nan and .inf literals are accepted in numeric fields.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoprim/sorting"
)

// ErrInvalidScenario wraps every structural problem found while loading.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Operation names.
const (
	OpSort   = "sort"
	OpSearch = "search"
	OpApprox = "approx"
	OpCalc   = "calc"
)

// Search kinds.
const (
	SearchLinear    = "linear"
	SearchBinary    = "binary"
	SearchRecursive = "recursive"
	SearchFirst     = "first"
)

// Scenario is a named list of steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one call into a primitive. Which fields apply depends on Op:
//   - sort:   Algorithm, Input
//   - search: Kind, Input, Target
//   - approx: Func (sqrt|sin|cos|ln), X
//   - calc:   Func (power|factorial|comb|perm|fib|mean|stddev|eval), Args, Operator
//
// Expect compares against the rendered output; ExpectError names the
// expected error kind (see ErrorKind). At most one of them may be set.
type Step struct {
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Op          string    `yaml:"op" json:"op"`
	Algorithm   string    `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Kind        string    `yaml:"kind,omitempty" json:"kind,omitempty"`
	Func        string    `yaml:"func,omitempty" json:"func,omitempty"`
	Input       []float64 `yaml:"input,omitempty" json:"-"`
	Target      *float64  `yaml:"target,omitempty" json:"-"`
	X           *float64  `yaml:"x,omitempty" json:"-"`
	Args        []float64 `yaml:"args,omitempty" json:"-"`
	Operator    string    `yaml:"operator,omitempty" json:"operator,omitempty"`
	Expect      string    `yaml:"expect,omitempty" json:"expect,omitempty"`
	ExpectError string    `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// Label is the short "op/variant" tag used in reports, e.g. "sort/quick".
func (s Step) Label() string {
	switch s.Op {
	case OpSort:
		return s.Op + "/" + s.Algorithm
	case OpSearch:
		return s.Op + "/" + s.Kind
	default:
		return s.Op + "/" + s.Func
	}
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a scenario with strict field checking (typos such as
// "algoritm:" are rejected) and validates it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: parse YAML: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks required fields and per-op arguments.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: steps list is required and must be non-empty", ErrInvalidScenario)
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].Validate(); err != nil {
			return fmt.Errorf("%w: steps[%d]: %v", ErrInvalidScenario, i, err)
		}
	}

	return nil
}

// Validate checks that the step names a known operation with usable arguments.
func (s Step) Validate() error {
	if s.Expect != "" && s.ExpectError != "" {
		return errors.New("expect and expect_error are mutually exclusive")
	}

	switch s.Op {
	case OpSort:
		if _, err := sorting.ParseAlgorithm(s.Algorithm); err != nil {
			return err
		}
	case OpSearch:
		switch s.Kind {
		case SearchLinear, SearchBinary, SearchRecursive, SearchFirst:
		default:
			return fmt.Errorf("unknown search kind %q", s.Kind)
		}
		if s.Target == nil {
			return errors.New("search needs a target")
		}
	case OpApprox:
		switch s.Func {
		case "sqrt", "sin", "cos", "ln":
		default:
			return fmt.Errorf("unknown approx func %q", s.Func)
		}
		if s.X == nil {
			return errors.New("approx needs x")
		}
	case OpCalc:
		want, ok := calcArity[s.Func]
		if !ok {
			return fmt.Errorf("unknown calc func %q", s.Func)
		}
		if want >= 0 && len(s.Args) != want {
			return fmt.Errorf("calc %s takes %d args, got %d", s.Func, want, len(s.Args))
		}
		if s.Func == "eval" && len([]rune(s.Operator)) != 1 {
			return fmt.Errorf("calc eval needs a single-character operator, got %q", s.Operator)
		}
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}

	return nil
}

// calcArity maps calc funcs to their argument count; -1 means any.
var calcArity = map[string]int{
	"power":     2,
	"factorial": 1,
	"comb":      2,
	"perm":      2,
	"fib":       1,
	"mean":      -1,
	"stddev":    -1,
	"eval":      2,
}
