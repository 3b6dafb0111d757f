package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/ecmanum/lang/scanner"
	"github.com/mna/ecmanum/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, token.PosLong, args...)
}

// TokenizeFiles scans the files and prints one token per line to
// stdio.Stdout, with its position formatted according to posMode. Errors are
// printed to stdio.Stderr.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, posMode token.PosMode, files ...string) error {
	toksByFile, err := scanner.ScanFiles(ctx, files...)
	for i, toks := range toksByFile {
		for _, tok := range toks {
			if pos := token.FormatPos(posMode, files[i], tok.Value.Pos); pos != "" {
				fmt.Fprintf(stdio.Stdout, "%s: ", pos)
			}
			fmt.Fprint(stdio.Stdout, tok.Token)
			if lit := tok.Token.Literal(tok.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
