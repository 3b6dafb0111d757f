package maincmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mna/ecmanum/conformance"
	"github.com/mna/ecmanum/lang/eval"
	"github.com/mna/ecmanum/lang/parser"
	"github.com/mna/ecmanum/lang/scanner"
	"github.com/mna/mainer"
)

func (c *Cmd) Eval(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return EvalExprs(ctx, stdio, args...)
}

// EvalExprs parses and evaluates each expression and prints its value on its
// own line to stdio.Stdout. Negative zero is printed as -0. An expression
// that fails to parse or evaluate prints its error to stdio.Stderr and the
// remaining expressions are still evaluated.
func EvalExprs(ctx context.Context, stdio mainer.Stdio, exprs ...string) error {
	var errs []error
	for i, src := range exprs {
		name := fmt.Sprintf("expr#%d", i+1)
		e, err := parser.ParseExpr(name, []byte(src))
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			errs = append(errs, err)
			continue
		}

		ev := eval.Evaluator{Filename: name}
		v, err := ev.Eval(ctx, e)
		if err != nil {
			printError(stdio, err)
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprintln(stdio.Stdout, conformance.Describe(v))
	}
	return errors.Join(errs...)
}
