package ast

import (
	"fmt"

	"github.com/mna/ecmanum/lang/token"
)

type (
	// AssertStmt represents an assertion, e.g. assert 1 + 2 === 3.
	AssertStmt struct {
		Assert    token.Pos
		Expr      Expr
		Semicolon token.Pos // zero if no terminating ';'
		End       token.Pos
	}

	// BadStmt represents a statement that failed to parse.
	BadStmt struct {
		Start token.Pos
		End   token.Pos
	}
)

func (n *AssertStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "assert", nil) }
func (n *AssertStmt) Span() (start, end token.Pos)  { return n.Assert, n.End }
func (n *AssertStmt) Walk(v Visitor)                { Walk(v, n.Expr) }

func (n *BadStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "bad stmt", nil) }
func (n *BadStmt) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *BadStmt) Walk(_ Visitor)                {}

func (n *AssertStmt) stmt() {}
func (n *BadStmt) stmt()    {}
