// Package parser implements the parser of conformance scripts and
// expressions. It produces an AST as defined by package ast.
package parser

import (
	"context"
	"errors"
	"os"

	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/scanner"
	"github.com/mna/ecmanum/lang/token"
)

// Mode is a set of bit flags that configures the parsing. By default (0), the
// AST is parsed fully, all errors are reported and comments are ignored.
type Mode uint

// List of supported parsing modes, which can be combined with bitwise or.
const (
	Comments Mode = 1 << iota // parse and report comments, associate them with their AST node.
)

// ParseFiles is a helper function that parses the source files and returns
// the ASTs and any error encountered. The error, if non-nil, is guaranteed to
// implement Unwrap() []error.
func ParseFiles(ctx context.Context, mode Mode, files ...string) ([]*ast.Chunk, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var errs scanner.ErrorList
	res := make([]*ast.Chunk, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return res, errors.Join(errs.Err(), err)
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs.Add(token.Position{Filename: file}, err.Error())
			continue
		}

		var p parser
		p.init(mode, file, b)
		res = append(res, p.parseChunk())
		errs = append(errs, p.errors...)
	}
	return res, errs.Err()
}

// ParseChunk is a helper function that parses a single chunk from a slice of
// bytes and returns the AST and any error encountered. The filename is used
// for error positions and as chunk name. The error, if non-nil, is guaranteed
// to be a scanner.ErrorList.
func ParseChunk(mode Mode, filename string, src []byte) (*ast.Chunk, error) {
	var p parser
	p.init(mode, filename, src)
	ch := p.parseChunk()
	return ch, p.errors.Err()
}

// ParseExpr parses a single expression from src, which must not contain
// anything else. The error, if non-nil, is guaranteed to be a
// scanner.ErrorList.
func ParseExpr(filename string, src []byte) (expr ast.Expr, err error) {
	var p parser
	p.init(0, filename, src)

	defer func() {
		if e := recover(); e != nil {
			if e != errPanicMode {
				panic(e)
			}
			expr = &ast.BadExpr{Start: p.val.Pos, End: p.val.End}
			err = p.errors.Err()
		}
	}()

	expr = p.parseExpr()
	p.expect(token.EOF)
	p.errors.Sort()
	return expr, p.errors.Err()
}

// parser parses source files and generates an AST.
type parser struct {
	// those fields are immutable after p.init
	parseComments bool
	scanner       scanner.Scanner
	errors        scanner.ErrorList
	filename      string

	// current token
	tok token.Token
	val token.Value

	// end position of the previous (non-comment) token
	prevEnd token.Pos

	// this field is only used when parseComments is true, pending comments are
	// those skipped over by p.advance, stored here until they are processed
	// post-parse.
	pendingComments []*ast.Comment
}

func (p *parser) init(mode Mode, filename string, src []byte) {
	p.parseComments = mode&Comments != 0
	p.filename = filename
	p.scanner.Init(filename, src, p.errors.Add)
	p.pendingComments = nil

	// advance to first token
	p.advance()
}

// advance to the next non-comment token.
func (p *parser) advance() {
	p.prevEnd = p.val.End
	for {
		p.tok = p.scanner.Scan(&p.val)
		if p.tok != token.COMMENT {
			return
		}
		if p.parseComments {
			p.pendingComments = append(p.pendingComments, &ast.Comment{
				Start: p.val.Pos,
				End:   p.val.End,
				Raw:   p.val.Raw,
				Val:   p.val.String,
			})
		}
	}
}
