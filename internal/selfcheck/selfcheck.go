// Package selfcheck runs a fixed battery of example invocations against the
// category realizations and reports pass/fail per check.
package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Check is one example invocation. Exactly one of Want and WantErr is meaningful:
// when WantErr is set the check passes only if Run returns an error matching it.
type Check struct {
	Name     string
	Category string
	Want     string
	WantErr  error
	Run      func() (string, error)
}

// Result records the outcome of a single check.
type Result struct {
	Name     string
	Category string
	Got      string
	Want     string
	Err      error
	Passed   bool
}

// Report holds the outcome of a whole run.
type Report struct {
	RunID   string
	Results []Result
}

// Run executes checks in order. It stops early only when ctx is cancelled.
func Run(ctx context.Context, checks []Check, logger *slog.Logger) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	logger = logger.With("component", "selfcheck", "run_id", report.RunID)
	logger.Info("self-check started", "checks", len(checks))

	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			logger.Warn("self-check cancelled", "completed", len(report.Results))
			return report, err
		}
		res := evaluate(c)
		report.Results = append(report.Results, res)
		if res.Passed {
			logger.Debug("check passed", "check", c.Name, "category", c.Category)
		} else {
			logger.Warn("check failed", "check", c.Name, "category", c.Category,
				"got", res.Got, "want", res.Want, "error", res.Err)
		}
	}

	logger.Info("self-check complete",
		"passed", len(report.Results)-len(report.Failures()),
		"failed", len(report.Failures()))
	return report, nil
}

func evaluate(c Check) Result {
	res := Result{Name: c.Name, Category: c.Category, Want: c.Want}
	got, err := c.Run()
	res.Got = got
	res.Err = err

	if c.WantErr != nil {
		res.Want = "error: " + c.WantErr.Error()
		res.Passed = errors.Is(err, c.WantErr)
		return res
	}
	res.Passed = err == nil && got == c.Want
	return res
}

// Passed reports whether every check passed. An empty report has not passed.
func (r *Report) Passed() bool {
	return len(r.Results) > 0 && len(r.Failures()) == 0
}

// Failures returns the results that did not pass.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// WriteText writes one line per check followed by a summary line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s  %-8s %s", status, res.Category, res.Name)
		if !res.Passed {
			got := fmt.Sprintf("%q", res.Got)
			if res.Err != nil {
				got = "error: " + res.Err.Error()
			}
			line += fmt.Sprintf(" (got %s, want %q)", got, res.Want)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	failed := len(r.Failures())
	_, err := fmt.Fprintf(w, "%d checks, %d passed, %d failed\n", len(r.Results), len(r.Results)-failed, failed)
	return err
}
