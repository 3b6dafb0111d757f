package eval

import (
	"fmt"

	"github.com/mna/ecmanum/lang/number"
)

// Value is a value produced by the evaluation of an expression. The only
// values are numbers (number.Number), booleans (Bool) and builtin functions
// (*Builtin).
type Value interface {
	// String returns the string representation of the value, as it would be
	// printed by the language.
	String() string

	// Type returns the type name of the value used in evaluation error
	// messages.
	Type() string
}

var (
	_ Value = number.Number(0)
	_ Value = Bool(false)
	_ Value = (*Builtin)(nil)
)

// Bool is the type of a boolean value.
type Bool bool

// List of boolean values.
const (
	False Bool = false
	True  Bool = true
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "boolean" }

// Builtin is a predeclared function implemented in Go. It is called with
// exactly Arity arguments.
type Builtin struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

// NewBuiltin returns a builtin function named name that accepts exactly
// arity arguments and is implemented by fn.
func NewBuiltin(name string, arity int, fn func(args []Value) (Value, error)) *Builtin {
	return &Builtin{name: name, arity: arity, fn: fn}
}

func (b *Builtin) Name() string   { return b.name }
func (b *Builtin) Arity() int     { return b.arity }
func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.name) }
func (b *Builtin) Type() string   { return "function" }

// Call calls the builtin with args after validating the number of arguments.
func (b *Builtin) Call(args []Value) (Value, error) {
	if len(args) != b.arity {
		return nil, fmt.Errorf("%s: got %d arguments, want %d", b.name, len(args), b.arity)
	}
	return b.fn(args)
}

// StrictEquals implements the === operator on values. Numbers are compared
// with number.StrictEquals, booleans and builtins by identity. Values of
// different types are never equal, there is no coercion.
func StrictEquals(x, y Value) bool {
	switch x := x.(type) {
	case number.Number:
		y, ok := y.(number.Number)
		return ok && number.StrictEquals(x, y)
	case Bool:
		y, ok := y.(Bool)
		return ok && x == y
	}
	return x == y
}

// SameValue implements the SameValue comparison on values, the same as
// StrictEquals except that numbers are compared with number.SameValue so that
// NaN is the same as NaN and +0 is not the same as -0.
func SameValue(x, y Value) bool {
	if xn, ok := x.(number.Number); ok {
		yn, ok := y.(number.Number)
		return ok && number.SameValue(xn, yn)
	}
	return StrictEquals(x, y)
}
