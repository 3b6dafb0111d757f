package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/parser"
	"github.com/mna/ecmanum/lang/scanner"
	"github.com/mna/ecmanum/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var parseMode parser.Mode
	if c.WithComments {
		parseMode |= parser.Comments
	}
	return ParseFiles(ctx, stdio, parseMode, token.PosLong, "", args...)
}

// ParseFiles parses the files and prints the AST of each to stdio.Stdout,
// using posMode and nodeFmt as configuration of the ast.Printer. Errors are
// printed to stdio.Stderr.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, parseMode parser.Mode, posMode token.PosMode, nodeFmt string, files ...string) error {
	printer := ast.Printer{
		Output:  stdio.Stdout,
		Pos:     posMode,
		NodeFmt: nodeFmt,
	}
	chunks, err := parser.ParseFiles(ctx, parseMode, files...)
	for _, ch := range chunks {
		if err := printer.Print(ch, ch.Name); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
