package parser_test

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/ecmanum/internal/filetest"
	"github.com/mna/ecmanum/internal/maincmd"
	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/parser"
	"github.com/mna/ecmanum/lang/scanner"
	"github.com/mna/ecmanum/lang/token"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpdateParserTests = flag.Bool("test.update-parser-tests", false, "If set, replace expected parser test results with actual results.")

func TestParser(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	modes := map[string]parser.Mode{
		"default":  parser.Mode(0),
		"comments": parser.Comments,
	}
	for name, mode := range modes {
		t.Run(name, func(t *testing.T) {
			for _, fi := range filetest.SourceFiles(t, srcDir, ".bx") {
				t.Run(fi.Name(), func(t *testing.T) {
					var buf, ebuf bytes.Buffer
					stdio := mainer.Stdio{
						Stdout: &buf,
						Stderr: &ebuf,
					}

					// error is ignored, we just want it to be printed to ebuf
					_ = maincmd.ParseFiles(ctx, stdio, mode, token.PosLineCol, "%#v", filepath.Join(srcDir, fi.Name()))
					ext := fmt.Sprintf(".want%d", mode)
					filetest.DiffCustom(t, fi, "output", ext, buf.String(), resultDir, testUpdateParserTests)
					filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateParserTests)
					filetest.LogSource(t, srcDir, fi)
				})
			}
		})
	}
}

// sexpr renders e as a fully parenthesized prefix expression.
func sexpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.NumberExpr:
		return e.Raw
	case *ast.IdentExpr:
		return e.Lit
	case *ast.ParenExpr:
		return sexpr(e.Expr)
	case *ast.UnaryExpr:
		return "(" + e.Type.String() + " " + sexpr(e.Right) + ")"
	case *ast.BinaryExpr:
		return "(" + e.Type.String() + " " + sexpr(e.Left) + " " + sexpr(e.Right) + ")"
	case *ast.CallExpr:
		args := make([]string, 0, len(e.Args)+1)
		args = append(args, e.Fn.Lit)
		for _, arg := range e.Args {
			args = append(args, sexpr(arg))
		}
		return "(" + strings.Join(args, " ") + ")"
	case *ast.BadExpr:
		return "<bad>"
	}
	return fmt.Sprintf("<%T>", e)
}

func TestParseExpr(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"-0", "(- 0)"},
		{"+-1", "(+ (- 1))"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"(1 - 2) - 3", "(- (- 1 2) 3)"},
		{"1 - (2 - 3)", "(- 1 (- 2 3))"},
		{"-Infinity * -Infinity", "(* (- Infinity) (- Infinity))"},
		{"-a / b", "(/ (- a) b)"},
		{"1 + 2 === 3", "(=== (+ 1 2) 3)"},
		{"0.2 * 0.5 !== 0.1", "(!== (* 0.2 0.5) 0.1)"},
		{"1 === 1 === !x", "(=== (=== 1 1) (! x))"},
		{"!isNaN(NaN)", "(! (isNaN NaN))"},
		{"sameValue(0 / -9, -0)", "(sameValue (/ 0 (- 9)) (- 0))"},
		{"f()", "(f)"},
		{"f(1, 2, 3)", "(f 1 2 3)"},
		{"/* c */ 1 // d", "1"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			e, err := parser.ParseExpr("test", []byte(c.in))
			require.NoError(t, err)
			assert.Equal(t, c.want, sexpr(e))
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string // first error
	}{
		{"", "test:1:1: expected expression, found end of file"},
		{"1 +", "test:1:4: expected expression, found end of file"},
		{"(1", "test:1:3: expected ')', found end of file"},
		{"1 2", "test:1:3: expected end of file, found number literal 2"},
		{"f(1,)", "test:1:5: expected expression, found ')'"},
		{"f(1 2)", "test:1:5: expected ')', found number literal 2"},
		{"1 == 2", "test:1:3: invalid operator, only strict equality '===' is supported"},
		{"1 @ 2", "test:1:3: illegal character U+0040 '@'"},
		{"assert 1", "test:1:1: expected expression, found assert"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			e, err := parser.ParseExpr("test", []byte(c.in))
			require.Error(t, err)
			require.NotNil(t, e)

			var el scanner.ErrorList
			require.ErrorAs(t, err, &el)
			require.NotEmpty(t, el)
			assert.Equal(t, c.want, el[0].Error())
		})
	}
}

func TestParseChunk(t *testing.T) {
	src := `
assert 1 + 1 === 2;;
;
assert -0 === 0
assert 3 !== 4;
`
	ch, err := parser.ParseChunk(0, "chunk.bx", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "chunk.bx", ch.Name)
	require.Len(t, ch.Stmts, 3)
	assert.Nil(t, ch.Comments)

	for i, want := range []string{"(=== (+ 1 1) 2)", "(=== (- 0) 0)", "(!== 3 4)"} {
		as, ok := ch.Stmts[i].(*ast.AssertStmt)
		require.True(t, ok, "statement %d: %T", i, ch.Stmts[i])
		assert.Equal(t, want, sexpr(as.Expr), "statement %d", i)
	}

	st := ch.Stmts[1].(*ast.AssertStmt)
	assert.Equal(t, token.Pos(0), st.Semicolon)
	start, end := st.Span()
	assert.Equal(t, token.MakePos(4, 1), start)
	assert.Equal(t, token.MakePos(4, 16), end)
}

func TestParseChunkRecovery(t *testing.T) {
	src := "assert 1 +;\nassert 2 === 2;\nfoo\nassert 3"
	ch, err := parser.ParseChunk(0, "r.bx", []byte(src))
	require.Error(t, err)

	var el scanner.ErrorList
	require.ErrorAs(t, err, &el)
	require.Len(t, el, 2)
	assert.Equal(t, "r.bx:1:11: expected expression, found ';'", el[0].Error())
	assert.Equal(t, "r.bx:3:1: expected statement, found identifier foo", el[1].Error())

	// the valid statements are still parsed
	require.Len(t, ch.Stmts, 4)
	assert.IsType(t, (*ast.BadStmt)(nil), ch.Stmts[0])
	assert.IsType(t, (*ast.AssertStmt)(nil), ch.Stmts[1])
	assert.IsType(t, (*ast.BadStmt)(nil), ch.Stmts[2])
	assert.IsType(t, (*ast.AssertStmt)(nil), ch.Stmts[3])
}

func TestParseChunkComments(t *testing.T) {
	src := `/* header */
assert 1 === 1 // same line

// before second
assert 2 === 2
// trailing at end`
	ch, err := parser.ParseChunk(parser.Comments, "c.bx", []byte(src))
	require.NoError(t, err)
	require.Len(t, ch.Stmts, 2)
	require.Len(t, ch.Comments, 4)

	want := []struct {
		val  string
		node ast.Node
	}{
		{" header ", ch.Stmts[0]},
		{" same line", ch.Stmts[0]},
		{" before second", ch.Stmts[1]},
		{" trailing at end", ch},
	}
	for i, w := range want {
		assert.Equal(t, w.val, ch.Comments[i].Val, "comment %d", i)
		assert.Same(t, w.node, ch.Comments[i].Node, "comment %d", i)
	}
}

func TestParseFiles(t *testing.T) {
	ctx := context.Background()

	chunks, err := parser.ParseFiles(ctx, 0)
	require.NoError(t, err)
	require.Nil(t, chunks)

	chunks, err = parser.ParseFiles(ctx, 0, filepath.Join("testdata", "in", "assert.bx"), filepath.Join("testdata", "in", "no-such-file.bx"))
	require.Error(t, err)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].Stmts, 2)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = parser.ParseFiles(canceled, 0, filepath.Join("testdata", "in", "assert.bx"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSpansNest(t *testing.T) {
	chunks, err := parser.ParseFiles(context.Background(), 0, filepath.Join("testdata", "in", "assert.bx"))
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	ch := chunks[0]

	notAfter := func(a, b token.Pos) bool {
		al, ac := a.LineCol()
		bl, bc := b.LineCol()
		return al < bl || al == bl && ac <= bc
	}

	var (
		stack []ast.Node
		v     ast.VisitorFunc
	)
	v = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitExit {
			stack = stack[:len(stack)-1]
			return nil
		}
		start, end := n.Span()
		assert.True(t, notAfter(start, end), "%v: start after end", n)
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			pstart, pend := parent.Span()
			assert.True(t, notAfter(pstart, start) && notAfter(end, pend), "%v not inside %v", n, parent)
		}
		stack = append(stack, n)
		return v
	}
	ast.Walk(v, ch)
	assert.Empty(t, stack)

	var count int
	ast.Inspect(ch, func(ast.Node) bool {
		count++
		return true
	})
	assert.Equal(t, 20, count)

	// skip the first statement
	var idents []string
	ast.Inspect(ch, func(n ast.Node) bool {
		if id, ok := n.(*ast.IdentExpr); ok {
			idents = append(idents, id.Lit)
		}
		return n != ch.Stmts[0]
	})
	assert.Equal(t, []string{"isNaN", "Infinity"}, idents)
}
