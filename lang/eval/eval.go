// Package eval implements a tree-walking evaluator of expressions parsed by
// package parser. Arithmetic is delegated to package number, there is no type
// coercion: operators apply to numbers, except the equality operators that
// apply to any value and the logical not operator that applies to booleans.
package eval

import (
	"context"
	"fmt"

	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/number"
	"github.com/mna/ecmanum/lang/token"
)

// Error is an error that occurred during evaluation, with the position of the
// expression that caused it.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.Filename != "" || e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// Evaluator evaluates expressions. The zero value is ready to use and
// resolves identifiers in the default universe. An Evaluator is safe for
// concurrent use as long as its universe is not modified.
type Evaluator struct {
	// Filename is the name of the source file of the expressions, used in
	// error positions. It should be the name given to the parser.
	Filename string

	// Universe is the set of predeclared names. If nil, DefaultUniverse is
	// used.
	Universe *Universe
}

// shared by all evaluators without a Universe, never modified.
var defaultUniverse = DefaultUniverse()

var arithOps = [...]func(x, y number.Number) number.Number{
	token.PLUS:  number.Add,
	token.MINUS: number.Sub,
	token.STAR:  number.Mul,
	token.SLASH: number.Div,
}

// Eval evaluates the expression e and returns its value. The context is
// checked before each call to a builtin function.
func (ev *Evaluator) Eval(ctx context.Context, e ast.Expr) (Value, error) {
	u := ev.Universe
	if u == nil {
		u = defaultUniverse
	}
	s := state{ctx: ctx, filename: ev.Filename, universe: u}
	return s.eval(e)
}

type state struct {
	ctx      context.Context
	filename string
	universe *Universe
}

func (s *state) errorf(n ast.Node, format string, args ...any) error {
	start, _ := n.Span()
	return &Error{Pos: start.Position(s.filename), Msg: fmt.Sprintf(format, args...)}
}

func (s *state) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.NumberExpr:
		return number.Of(e.Value), nil

	case *ast.IdentExpr:
		v, ok := s.universe.Lookup(e.Lit)
		if !ok {
			return nil, s.errorf(e, "undefined: %s", e.Lit)
		}
		return v, nil

	case *ast.ParenExpr:
		return s.eval(e.Expr)

	case *ast.UnaryExpr:
		return s.evalUnary(e)

	case *ast.BinaryExpr:
		return s.evalBinary(e)

	case *ast.CallExpr:
		return s.evalCall(e)

	case *ast.BadExpr:
		return nil, s.errorf(e, "invalid expression")
	}
	panic(fmt.Sprintf("unexpected expression type %T", e))
}

func (s *state) evalUnary(e *ast.UnaryExpr) (Value, error) {
	v, err := s.eval(e.Right)
	if err != nil {
		return nil, err
	}

	if e.Type == token.BANG {
		b, ok := v.(Bool)
		if !ok {
			return nil, s.errorf(e, "invalid operand for unary %s: %s", e.Type, v.Type())
		}
		return !b, nil
	}

	n, ok := v.(number.Number)
	if !ok {
		return nil, s.errorf(e, "invalid operand for unary %s: %s", e.Type, v.Type())
	}
	switch e.Type {
	case token.MINUS:
		return number.Neg(n), nil
	case token.PLUS:
		return number.Plus(n), nil
	}
	panic(fmt.Sprintf("unexpected unary operator %s", e.Type))
}

func (s *state) evalBinary(e *ast.BinaryExpr) (Value, error) {
	x, err := s.eval(e.Left)
	if err != nil {
		return nil, err
	}
	y, err := s.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Type {
	case token.EQEQEQ:
		return Bool(StrictEquals(x, y)), nil
	case token.BANGEQEQ:
		return Bool(!StrictEquals(x, y)), nil
	}

	xn, xok := x.(number.Number)
	yn, yok := y.(number.Number)
	if !xok || !yok {
		return nil, s.errorf(e, "invalid operands for binary %s: %s and %s", e.Type, x.Type(), y.Type())
	}
	return arithOps[e.Type](xn, yn), nil
}

func (s *state) evalCall(e *ast.CallExpr) (Value, error) {
	fn, err := s.eval(e.Fn)
	if err != nil {
		return nil, err
	}
	b, ok := fn.(*Builtin)
	if !ok {
		return nil, s.errorf(e, "%s is not a function: %s", e.Fn.Lit, fn.Type())
	}

	args := make([]Value, 0, len(e.Args))
	for _, arg := range e.Args {
		v, err := s.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	res, err := b.Call(args)
	if err != nil {
		return nil, s.errorf(e, "%s", err)
	}
	return res, nil
}
