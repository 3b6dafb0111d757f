package parser

import (
	"errors"
	"fmt"

	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/token"
)

var errPanicMode = errors.New("panic mode")

func (p *parser) parseChunk() *ast.Chunk {
	var chunk ast.Chunk
	chunk.Name = p.filename

	for p.tok != token.EOF {
		if stmt := p.parseStmt(); stmt != nil {
			chunk.Stmts = append(chunk.Stmts, stmt)
		}
	}
	chunk.EOF = p.val.Pos

	if p.parseComments {
		p.processComments(&chunk)
	}
	p.errors.Sort()
	return &chunk
}

// returns nil for a statement to ignore/skip (the ";" statement).
func (p *parser) parseStmt() (stmt ast.Stmt) {
	start := p.val.Pos

	defer func() {
		if err := recover(); err != nil {
			if err == errPanicMode {
				// synchronize to the next safe point and generate a BadStmt
				// for the interval.
				stmt = &ast.BadStmt{
					Start: start,
					End:   p.syncAfterError(),
				}
				return
			}
			panic(err)
		}
	}()

	switch p.tok {
	case token.SEMICOLON:
		// ignore empty statements
		p.advance()
		return nil

	case token.ASSERT:
		return p.parseAssertStmt()
	}

	p.errorExpected(p.val.Pos, "statement")
	panic(errPanicMode)
}

func (p *parser) parseAssertStmt() *ast.AssertStmt {
	var stmt ast.AssertStmt
	stmt.Assert = p.expect(token.ASSERT)
	stmt.Expr = p.parseExpr()

	switch p.tok {
	case token.SEMICOLON:
		stmt.Semicolon = p.expect(token.SEMICOLON)
	case token.EOF, token.ASSERT:
		// terminating semicolon is optional
	default:
		p.errorExpected(p.val.Pos, "';'")
		panic(errPanicMode)
	}
	stmt.End = p.prevEnd
	return &stmt
}

// expect checks that the current token is one of toks, advances and returns
// its position. Otherwise it reports an error and panics with errPanicMode.
func (p *parser) expect(toks ...token.Token) token.Pos {
	pos := p.val.Pos
	if !tokenIn(p.tok, toks...) {
		var what string
		for i, tok := range toks {
			if i > 0 {
				what += " or "
			}
			what += fmt.Sprintf("%#v", tok)
		}
		p.errorExpected(pos, what)
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

func (p *parser) errorExpected(pos token.Pos, what string) {
	msg := "expected " + what
	if pos == p.val.Pos {
		// the error happened at the current position, make the error message
		// more specific
		switch {
		case p.tok == token.ILLEGAL:
			// an error was already reported by the scanner
			return
		case p.tok == token.IDENT || p.tok == token.NUMBER:
			msg += ", found " + p.tok.String() + " " + p.val.Raw
		default:
			msg += fmt.Sprintf(", found %#v", p.tok)
		}
	}
	p.error(pos, msg)
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(pos.Position(p.filename), msg)
}

type syncMode int

const (
	syncAfter syncMode = iota
	syncAt
)

var syncToks = map[token.Token]syncMode{
	token.SEMICOLON: syncAfter,
	token.ASSERT:    syncAt,
}

// syncAfterError skips tokens until a safe point to resume parsing and
// returns the end position of the skipped interval.
func (p *parser) syncAfterError() token.Pos {
	for p.tok != token.EOF {
		if mode, ok := syncToks[p.tok]; ok {
			if mode == syncAfter {
				p.advance()
			}
			return p.prevEnd
		}
		p.advance()
	}
	return p.prevEnd
}

func tokenIn(t token.Token, toks ...token.Token) bool {
	for _, tok := range toks {
		if t == tok {
			return true
		}
	}
	return false
}
