package parser

import (
	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/token"
)

// processComments associates each pending comment with a statement of the
// chunk: the statement that contains it or ends on the line where it starts
// (a trailing comment), otherwise the next statement. Comments after the last
// statement are associated with the chunk.
func (p *parser) processComments(chunk *ast.Chunk) {
	i := 0
	for _, c := range p.pendingComments {
		c.Node = chunk
		cline, _ := c.Start.LineCol()

		for ; i < len(chunk.Stmts); i++ {
			stmt := chunk.Stmts[i]
			start, end := stmt.Span()
			eline, _ := end.LineCol()
			if !before(start, c.Start) || before(c.Start, end) || cline == eline {
				c.Node = stmt
				break
			}
		}
	}
	chunk.Comments = p.pendingComments
}

// before returns true if position a is strictly before position b.
func before(a, b token.Pos) bool {
	al, ac := a.LineCol()
	bl, bc := b.LineCol()
	return al < bl || al == bl && ac < bc
}
