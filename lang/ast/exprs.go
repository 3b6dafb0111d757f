package ast

import (
	"fmt"
	"unicode/utf8"

	"github.com/mna/ecmanum/lang/token"
)

// Unwrap the expression inside the parens. It unwraps multiple ParenExpr
// recursively until it reaches a non-ParenExpr.
func Unwrap(e Expr) Expr {
	if pe, ok := e.(*ParenExpr); ok {
		return Unwrap(pe.Expr)
	}
	return e
}

type (
	// BadExpr represents a bad expression that failed to parse.
	BadExpr struct {
		Start token.Pos
		End   token.Pos
	}

	// BinaryExpr represents a binary expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Type  token.Token // binary operator token type
		Op    token.Pos
		Right Expr
	}

	// CallExpr represents a call to a builtin function, e.g. isNaN(x).
	CallExpr struct {
		Fn     *IdentExpr
		Lparen token.Pos
		Args   []Expr
		Commas []token.Pos // len(Args)-1
		Rparen token.Pos
	}

	// IdentExpr represents an identifier.
	IdentExpr struct {
		Start token.Pos
		Lit   string
	}

	// NumberExpr represents a numeric literal.
	NumberExpr struct {
		Start token.Pos
		Raw   string
		Value float64
	}

	// ParenExpr represents a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos
		Expr   Expr
		Rparen token.Pos
	}

	// UnaryExpr represents a unary expression, e.g. -x.
	UnaryExpr struct {
		Type  token.Token // unary operator token type
		Op    token.Pos
		Right Expr
	}
)

func (n *BadExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "bad expr", nil) }
func (n *BadExpr) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *BadExpr) Walk(_ Visitor)                {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Type.String(), nil)
}
func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() (start, end token.Pos) {
	start, _ = n.Fn.Span()
	return start, after(n.Rparen, ")")
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Fn)
	for _, arg := range n.Args {
		Walk(v, arg)
	}
}

func (n *IdentExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "ident "+n.Lit, nil) }
func (n *IdentExpr) Span() (start, end token.Pos)  { return n.Start, after(n.Start, n.Lit) }
func (n *IdentExpr) Walk(_ Visitor)                {}

func (n *NumberExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "number "+n.Raw, nil) }
func (n *NumberExpr) Span() (start, end token.Pos)  { return n.Start, after(n.Start, n.Raw) }
func (n *NumberExpr) Walk(_ Visitor)                {}

func (n *ParenExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "paren", nil) }
func (n *ParenExpr) Span() (start, end token.Pos)  { return n.Lparen, after(n.Rparen, ")") }
func (n *ParenExpr) Walk(v Visitor)                { Walk(v, n.Expr) }

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Type.String(), nil)
}
func (n *UnaryExpr) Span() (start, end token.Pos) {
	_, end = n.Right.Span()
	return n.Op, end
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }

// after returns the position immediately after the single-line text lit that
// starts at pos.
func after(pos token.Pos, lit string) token.Pos {
	l, c := pos.LineCol()
	return token.MakePos(l, c+utf8.RuneCountInString(lit))
}

func (n *BadExpr) expr()    {}
func (n *BinaryExpr) expr() {}
func (n *CallExpr) expr()   {}
func (n *IdentExpr) expr()  {}
func (n *NumberExpr) expr() {}
func (n *ParenExpr) expr()  {}
func (n *UnaryExpr) expr()  {}
