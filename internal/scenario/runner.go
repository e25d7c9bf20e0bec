package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/algoprim/approx"
	"github.com/katalvlaran/algoprim/internal/logger"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Name   string `json:"name,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Want   string `json:"want,omitempty"`
	Passed bool   `json:"passed"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Name   string       `json:"name"`
	Steps  []StepResult `json:"steps"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// OK reports whether every step passed.
func (r *Result) OK() bool { return r.Failed == 0 }

// Runner executes scenarios.
type Runner struct {
	Log    logger.Logger
	Approx []approx.Option
}

// Run executes every step in order. A failing step is recorded and the run
// continues; only context cancellation stops it early.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	log := r.Log
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithTarget("scenario")

	res := &Result{Name: sc.Name, Steps: make([]StepResult, 0, len(sc.Steps))}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sr := evaluate(i+1, step, r.Approx)
		if sr.Passed {
			res.Passed++
			log.Debug("step passed", logger.WithField("step", sr.Index), logger.WithField("label", sr.Label))
		} else {
			res.Failed++
			log.Warn("step failed",
				logger.WithField("step", sr.Index),
				logger.WithField("label", sr.Label),
				logger.WithField("want", sr.Want))
		}
		res.Steps = append(res.Steps, sr)
	}
	log.Info("scenario finished",
		logger.WithField("name", sc.Name),
		logger.WithField("passed", res.Passed),
		logger.WithField("failed", res.Failed))

	return res, nil
}

func evaluate(index int, step Step, opts []approx.Option) StepResult {
	sr := StepResult{Index: index, Label: step.Label(), Name: step.Name}
	out, err := Execute(step, opts...)
	sr.Output = out
	sr.Error = ErrorKind(err)

	switch {
	case step.ExpectError != "":
		sr.Want = "error: " + step.ExpectError
		sr.Passed = sr.Error == step.ExpectError
	case err != nil:
		sr.Passed = false
	case step.Expect != "":
		sr.Want = step.Expect
		sr.Passed = out == step.Expect
	default:
		sr.Passed = true
	}

	return sr
}

// Render writes res in the given format: "text" (colour optional) or "json".
func Render(w io.Writer, res *Result, format string, colorize bool) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if !colorize {
		pass.DisableColor()
		fail.DisableColor()
	}

	if _, err := fmt.Fprintf(w, "scenario: %s\n", res.Name); err != nil {
		return err
	}
	for _, s := range res.Steps {
		status := pass.Sprint("PASS")
		if !s.Passed {
			status = fail.Sprint("FAIL")
		}
		detail := s.Output
		if s.Error != "" {
			detail = "error: " + s.Error
		}
		if !s.Passed && s.Want != "" {
			detail += " (want " + s.Want + ")"
		}
		if _, err := fmt.Fprintf(w, "%s %2d  %-16s %s\n", status, s.Index, s.Label, detail); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", res.Passed, res.Failed)

	return err
}
