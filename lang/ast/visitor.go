package ast

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

// List of visit directions.
const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor is called for each node visited by Walk. Returning a nil Visitor
// from a VisitEnter call skips the children of the node, and the
// corresponding VisitExit call.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc is a function that implements the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

// Visit implements the Visitor interface for VisitorFunc.
func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor {
	return f(n, dir)
}

// Walk visits node and its children in depth-first order with v: Visit is
// called with VisitEnter, then the children are walked with the returned
// Visitor if it is not nil, and Visit is called on that Visitor with
// VisitExit.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}

// Inspect walks node in depth-first order and calls fn for each node it
// enters. The children of a node are skipped if fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	var v VisitorFunc
	v = func(n Node, dir VisitDirection) Visitor {
		if dir == VisitExit || !fn(n) {
			return nil
		}
		return v
	}
	Walk(v, node)
}
