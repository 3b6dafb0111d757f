package ast

import (
	"fmt"
	"os"
	"strings"

	"github.com/mna/ecmanum/lang/token"
)

type (
	// Chunk represents a source file, a list of statements. It keeps track of
	// its name and the EOF, which is useful for empty files to get a valid
	// position.
	Chunk struct {
		// Name is the filename, which may be empty if the chunk is not a file.
		Name string

		// Comments is filled only if parsing comments was requested, and it lists
		// comments ordered by position in the chunk.
		Comments []*Comment

		Stmts []Stmt
		EOF   token.Pos // position of the EOF marker
	}

	// Comment represents a single comment, either a line or a block comment.
	Comment struct {
		// Node this comment is associated with, only set if parsing comments was
		// requested, and only after parsing (via post-processing).
		Node     Node
		Start    token.Pos // position of the starting '/'
		End      token.Pos
		Raw, Val string
	}
)

func (n *Chunk) Format(f fmt.State, verb rune) {
	lbl := "chunk"
	if n.Name != "" {
		lbl += " " + strings.ReplaceAll(n.Name, string(os.PathSeparator), "/")
	}
	format(f, verb, n, lbl, map[string]int{"stmts": len(n.Stmts)})
}
func (n *Chunk) Span() (start, end token.Pos) {
	if len(n.Stmts) == 0 {
		return n.EOF, n.EOF
	}
	start, _ = n.Stmts[0].Span()
	_, end = n.Stmts[len(n.Stmts)-1].Span()
	return start, end
}
func (n *Chunk) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func (n *Comment) Format(f fmt.State, verb rune) { format(f, verb, n, "comment "+n.Val, nil) }
func (n *Comment) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *Comment) Walk(_ Visitor)                {}
