// Package harness runs registered scenario checks sequentially and
// aggregates their results. Failures are collected, never fatal: a failing
// check finishes its body, its cleanups run, and the remaining checks still
// execute. The process outcome is carried by Summary.Passed.
package harness

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/godouble/godouble/pkg/logger"
)

// Check is one named scenario.
type Check struct {
	Name string
	Fn   func(*T)
}

// T is the per-check context handed to a check body. It collects non-fatal
// failures and runs registered cleanups on every exit path, including
// panics. T satisfies double.TestReporter, so a check can hand it straight
// to double.New.
type T struct {
	name     string
	log      *logger.Logger
	failures []string
	cleanups []func()
}

// Name returns the check's name.
func (t *T) Name() string { return t.name }

// Errorf records a failure and lets the check body continue.
func (t *T) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	t.failures = append(t.failures, msg)
	t.log.Error("check failure", "failure", msg)
}

// Equal records a failure with a diff when want and got differ. It returns
// whether they were equal.
func (t *T) Equal(want, got interface{}, label string) bool {
	if cmp.Equal(want, got) {
		return true
	}
	t.Errorf("%s: mismatch (-want +got):\n%s", label, cmp.Diff(want, got))
	return false
}

// Failed reports whether any failure has been recorded so far.
func (t *T) Failed() bool { return len(t.failures) > 0 }

// Log writes a structured info line scoped to the check.
func (t *T) Log(msg string, keyvals ...interface{}) {
	t.log.Info(msg, keyvals...)
}

// Cleanup registers fn to run when the check finishes, last-in-first-out.
// Cleanups run on all exit paths, including failed checks and panics.
func (t *T) Cleanup(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}

func (t *T) runCleanups() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		fn := t.cleanups[i]
		func() {
			defer func() {
				if p := recover(); p != nil {
					t.failures = append(t.failures, fmt.Sprintf("panic in cleanup: %v", p))
				}
			}()
			fn()
		}()
	}
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Failures []string
	Duration time.Duration
}

// Passed reports whether the check recorded no failures.
func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Summary aggregates one run.
type Summary struct {
	RunID    uuid.UUID
	Results  []Result
	Duration time.Duration
}

// Passed reports whether every executed check passed.
func (s Summary) Passed() bool {
	for _, r := range s.Results {
		if !r.Passed() {
			return false
		}
	}
	return true
}

// Counts returns how many checks passed and failed.
func (s Summary) Counts() (passed, failed int) {
	for _, r := range s.Results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Runner executes checks one at a time, in registration order.
type Runner struct {
	checks   []Check
	log      *logger.Logger
	reporter *Reporter
	failFast bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger for run and check events.
func WithLogger(log *logger.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithReporter sets the human-readable reporter. Without one the runner is
// silent and only the Summary carries results.
func WithReporter(rep *Reporter) RunnerOption {
	return func(r *Runner) { r.reporter = rep }
}

// WithFailFast stops the run after the first failing check.
func WithFailFast(on bool) RunnerOption {
	return func(r *Runner) { r.failFast = on }
}

// NewRunner creates a Runner over the given checks.
func NewRunner(checks []Check, opts ...RunnerOption) *Runner {
	r := &Runner{
		checks: checks,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every check whose name matches filter (a regular expression;
// empty matches all) and returns the aggregate summary. The only error is a
// malformed filter.
func (r *Runner) Run(filter string) (Summary, error) {
	var re *regexp.Regexp
	if filter != "" {
		var err error
		re, err = regexp.Compile(filter)
		if err != nil {
			return Summary{}, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
	}

	summary := Summary{RunID: uuid.New()}
	log := r.log.With("run_id", summary.RunID.String())
	log.Info("run started", "checks", len(r.checks), "filter", filter)

	start := time.Now()
	for _, c := range r.checks {
		if re != nil && !re.MatchString(c.Name) {
			continue
		}
		res := r.runCheck(c, log)
		summary.Results = append(summary.Results, res)
		if r.reporter != nil {
			r.reporter.Result(res)
		}
		if r.failFast && !res.Passed() {
			log.Warn("fail-fast stop", "check", c.Name)
			break
		}
	}
	summary.Duration = time.Since(start)

	passed, failed := summary.Counts()
	log.Info("run finished", "passed", passed, "failed", failed)
	if r.reporter != nil {
		r.reporter.Summary(summary)
	}
	return summary, nil
}

// runCheck executes one check with panic recovery and guaranteed cleanups.
func (r *Runner) runCheck(c Check, log *logger.Logger) Result {
	t := &T{name: c.Name, log: log.With("check", c.Name)}

	start := time.Now()
	func() {
		defer t.runCleanups()
		defer func() {
			if p := recover(); p != nil {
				t.failures = append(t.failures, fmt.Sprintf("panic: %v", p))
			}
		}()
		c.Fn(t)
	}()

	return Result{
		Name:     c.Name,
		Failures: t.failures,
		Duration: time.Since(start),
	}
}
