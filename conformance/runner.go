package conformance

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/mna/ecmanum/lang/eval"
	"github.com/mna/ecmanum/lang/number"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of running a test case.
type Status int

// List of test case statuses.
const (
	Passed Status = iota
	Failed
	Skipped
	Errored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "pass"
	case Failed:
		return "FAIL"
	case Skipped:
		return "skip"
	case Errored:
		return "ERROR"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the result of running a test case.
type Result struct {
	Case     *Case
	Status   Status
	Got      eval.Value // nil if evaluation failed or did not happen
	Err      error      // evaluation or load error
	Duration time.Duration
}

// Violation describes a test case whose actual result does not match the
// expected one.
type Violation struct {
	Case *Case
	Got  eval.Value
	Err  error
}

func (v Violation) String() string {
	c := v.Case
	var msg string
	switch {
	case c.LoadErr != nil:
		msg = fmt.Sprintf("invalid test: %v", c.LoadErr)
	case c.WantErr != "" && v.Err != nil:
		msg = fmt.Sprintf("want error containing %q, got error %q", c.WantErr, v.Err)
	case c.WantErr != "":
		msg = fmt.Sprintf("want error containing %q, got %s", c.WantErr, Describe(v.Got))
	case v.Err != nil:
		msg = fmt.Sprintf("want %s, got error: %v", Describe(c.Want), v.Err)
	default:
		msg = fmt.Sprintf("want %s, got %s", Describe(c.Want), Describe(v.Got))
	}
	return c.String() + ": " + msg
}

// Reporter is the capability through which the runner reports violations.
// It is the only failure reporting surface, the arithmetic itself never
// reports anything. ReportViolation is never called concurrently.
type Reporter interface {
	ReportViolation(Violation)
}

// ReporterFunc is a function that implements Reporter.
type ReporterFunc func(Violation)

// ReportViolation implements Reporter by calling fn(v).
func (fn ReporterFunc) ReportViolation(v Violation) { fn(v) }

// Summary is the summary of a run.
type Summary struct {
	Passed, Failed, Skipped, Errored int
	Results                          []Result
}

// OK returns true if no test case failed or errored.
func (s *Summary) OK() bool { return s.Failed == 0 && s.Errored == 0 }

// Total returns the number of test cases that were run or skipped.
func (s *Summary) Total() int { return s.Passed + s.Failed + s.Skipped + s.Errored }

func (s *Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped, %d errors", s.Passed, s.Failed, s.Skipped, s.Errored)
}

// Runner runs the test cases of suites.
type Runner struct {
	// Jobs is the maximum number of test cases evaluated concurrently. If <= 0,
	// runtime.GOMAXPROCS is used.
	Jobs int

	// Reporter is called for each case that fails or errors, in the order of
	// the cases. It may be nil.
	Reporter Reporter

	// Universe is the set of predeclared names available to the expressions.
	// If nil, the default universe is used.
	Universe *eval.Universe
}

// Run runs all test cases of the suites and returns the summary. Results
// are in the order of the suites and cases. The error is non-nil only if ctx
// is done before all cases ran, in which case the summary is nil and no
// violation is reported.
func (r *Runner) Run(ctx context.Context, suites ...*Suite) (*Summary, error) {
	var cases []*Case
	for _, s := range suites {
		cases = append(cases, s.Cases...)
	}

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runCase(gctx, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := &Summary{Results: results}
	for _, res := range results {
		switch res.Status {
		case Passed:
			sum.Passed++
		case Failed:
			sum.Failed++
		case Skipped:
			sum.Skipped++
		case Errored:
			sum.Errored++
		}
		if r.Reporter != nil && (res.Status == Failed || res.Status == Errored) {
			r.Reporter.ReportViolation(Violation{Case: res.Case, Got: res.Got, Err: res.Err})
		}
	}
	return sum, nil
}

func (r *Runner) runCase(ctx context.Context, c *Case) Result {
	res := Result{Case: c}
	switch {
	case c.Skip != "":
		res.Status = Skipped
		return res
	case c.LoadErr != nil:
		res.Status = Errored
		res.Err = c.LoadErr
		return res
	}

	ev := eval.Evaluator{Filename: c.evalFile, Universe: r.Universe}
	start := time.Now()
	res.Got, res.Err = ev.Eval(ctx, c.Expr)
	res.Duration = time.Since(start)

	switch {
	case c.WantErr != "":
		if res.Err != nil && strings.Contains(res.Err.Error(), c.WantErr) {
			res.Status = Passed
		} else {
			res.Status = Failed
		}
	case res.Err != nil:
		res.Status = Errored
	case eval.SameValue(c.Want, res.Got):
		res.Status = Passed
	default:
		res.Status = Failed
	}
	return res
}

// Describe returns a description of v that distinguishes the values that
// SameValue distinguishes, i.e. -0 is described as "-0" while its string
// representation is "0".
func Describe(v eval.Value) string {
	if v == nil {
		return "<nil>"
	}
	if n, ok := v.(number.Number); ok && n.Class() == number.ClassNegZero {
		return "-0"
	}
	return v.String()
}
