package parser

import (
	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/token"
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseSubExpr(0)
}

var (
	binopPriority = [...]struct{ left, right int }{
		token.EQEQEQ: {1, 1}, token.BANGEQEQ: {1, 1},
		token.PLUS: {2, 2}, token.MINUS: {2, 2},
		token.STAR: {3, 3}, token.SLASH: {3, 3},
	}
	unopPriority = 4
)

// parses a SubExpr where the binary operator has a priority higher than the
// provided priority (for precedence climbing). All binary operators are left
// associative.
func (p *parser) parseSubExpr(priority int) ast.Expr {
	var left ast.Expr

	if p.tok.IsUnop() {
		var unop ast.UnaryExpr
		unop.Type = p.tok
		unop.Op = p.expect(p.tok)
		unop.Right = p.parseSubExpr(unopPriority)
		left = &unop
	} else {
		left = p.parsePrimaryExpr()
	}

	for p.tok.IsBinop() && binopPriority[p.tok].left > priority {
		var bin ast.BinaryExpr
		bin.Left = left
		bin.Type = p.tok
		bin.Op = p.expect(p.tok)
		bin.Right = p.parseSubExpr(binopPriority[bin.Type].right)
		left = &bin
	}

	return left
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	switch p.tok {
	case token.NUMBER:
		return p.parseNumberExpr()

	case token.IDENT:
		ident := p.parseIdentExpr()
		if p.tok == token.LPAREN {
			return p.parseCallExpr(ident)
		}
		return ident

	case token.LPAREN:
		var paren ast.ParenExpr
		paren.Lparen = p.expect(token.LPAREN)
		paren.Expr = p.parseExpr()
		paren.Rparen = p.expect(token.RPAREN)
		return &paren
	}

	p.errorExpected(p.val.Pos, "expression")
	panic(errPanicMode)
}

func (p *parser) parseNumberExpr() *ast.NumberExpr {
	lit := &ast.NumberExpr{
		Raw:   p.val.Raw,
		Value: p.val.Float,
	}
	lit.Start = p.expect(token.NUMBER)
	return lit
}

func (p *parser) parseIdentExpr() *ast.IdentExpr {
	var exp ast.IdentExpr
	exp.Lit = p.val.Raw
	exp.Start = p.expect(token.IDENT)
	return &exp
}

func (p *parser) parseCallExpr(fn *ast.IdentExpr) *ast.CallExpr {
	var call ast.CallExpr
	call.Fn = fn
	call.Lparen = p.expect(token.LPAREN)

	if p.tok != token.RPAREN {
		call.Args = append(call.Args, p.parseExpr())
		for p.tok == token.COMMA {
			call.Commas = append(call.Commas, p.expect(token.COMMA))
			call.Args = append(call.Args, p.parseExpr())
		}
	}
	call.Rparen = p.expect(token.RPAREN)
	return &call
}
