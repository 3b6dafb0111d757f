package maincmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mna/ecmanum/conformance"
	"github.com/mna/mainer"
)

func (c *Cmd) Check(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CheckPaths(ctx, stdio, c.Jobs, c.Verbose, args...)
}

var errViolations = errors.New("conformance violations")

// CheckPaths loads the conformance suites at paths (or the embedded default
// suites if no path is provided), runs them with at most jobs concurrent
// cases and prints the violations and the summary to stdio.Stdout. If
// verbose is true, the status of every case is printed. Loading errors are
// printed to stdio.Stderr and do not prevent the valid suites from running.
func CheckPaths(ctx context.Context, stdio mainer.Stdio, jobs int, verbose bool, paths ...string) error {
	var (
		suites []*conformance.Suite
		err    error
	)
	if len(paths) == 0 {
		suites, err = conformance.DefaultSuites()
	} else {
		suites, err = conformance.LoadPaths(paths...)
	}
	if err != nil {
		printError(stdio, err)
	}

	r := conformance.Runner{Jobs: jobs}
	if !verbose {
		r.Reporter = conformance.ReporterFunc(func(v conformance.Violation) {
			fmt.Fprintln(stdio.Stdout, v)
		})
	}
	sum, rerr := r.Run(ctx, suites...)
	if rerr != nil {
		return printError(stdio, rerr)
	}

	if verbose {
		for _, res := range sum.Results {
			switch res.Status {
			case conformance.Passed, conformance.Skipped:
				fmt.Fprintf(stdio.Stdout, "%-5s %s", res.Status, res.Case)
				if res.Case.Skip != "" {
					fmt.Fprintf(stdio.Stdout, " (%s)", res.Case.Skip)
				}
				fmt.Fprintln(stdio.Stdout)
			default:
				v := conformance.Violation{Case: res.Case, Got: res.Got, Err: res.Err}
				fmt.Fprintf(stdio.Stdout, "%-5s %s\n", res.Status, v)
			}
		}
	}

	fmt.Fprintln(stdio.Stdout, sum)
	if err != nil {
		return err
	}
	if !sum.OK() {
		return errViolations
	}
	return nil
}
