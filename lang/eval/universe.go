package eval

import (
	"fmt"
	"sort"

	"github.com/dolthub/swiss"
	"github.com/mna/ecmanum/lang/number"
)

// Universe is the set of predeclared names available to expressions. It is
// safe for concurrent lookups once fully defined, but Define must not be
// called concurrently with anything else.
type Universe struct {
	m *swiss.Map[string, Value]
}

// NewUniverse returns an empty universe with initial capacity for at least
// size names.
func NewUniverse(size int) *Universe {
	return &Universe{m: swiss.NewMap[string, Value](uint32(size))}
}

// DefaultUniverse returns a new universe with the standard predeclared names:
// the NaN and Infinity values and the isNaN and sameValue functions.
func DefaultUniverse() *Universe {
	u := NewUniverse(4)
	u.Define("NaN", number.NaN())
	u.Define("Infinity", number.Inf(number.Positive))
	u.Define("isNaN", NewBuiltin("isNaN", 1, isNaN))
	u.Define("sameValue", NewBuiltin("sameValue", 2, sameValue))
	return u
}

// Define sets the value of name, replacing any existing value.
func (u *Universe) Define(name string, v Value) { u.m.Put(name, v) }

// Lookup returns the value of name and true if it is defined, nil and false
// otherwise.
func (u *Universe) Lookup(name string) (Value, bool) { return u.m.Get(name) }

// Len returns the number of names defined in the universe.
func (u *Universe) Len() int { return u.m.Count() }

// Names returns the sorted list of names defined in the universe.
func (u *Universe) Names() []string {
	names := make([]string, 0, u.m.Count())
	u.m.Iter(func(k string, _ Value) bool {
		names = append(names, k)
		return false
	})
	sort.Strings(names)
	return names
}

func isNaN(args []Value) (Value, error) {
	n, ok := args[0].(number.Number)
	if !ok {
		return nil, fmt.Errorf("isNaN: argument must be a number, got %s", args[0].Type())
	}
	return Bool(number.IsNaN(n)), nil
}

func sameValue(args []Value) (Value, error) {
	return Bool(SameValue(args[0], args[1])), nil
}
