package conformance

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mna/ecmanum/lang/ast"
	"github.com/mna/ecmanum/lang/eval"
	"github.com/mna/ecmanum/lang/number"
	"github.com/mna/ecmanum/lang/parser"
	"github.com/mna/ecmanum/lang/token"
	"gopkg.in/yaml.v3"
)

// List of supported suite file extensions.
const (
	ScriptExt = ".bx"
	YAMLExt   = ".yaml"
)

//go:embed suites
var defaultSuites embed.FS

// Suite is a loaded suite of test cases, from a script or a YAML file.
type Suite struct {
	Name        string
	Description string
	File        string
	Cases       []*Case
}

// Case is a single loaded test case, ready to run.
type Case struct {
	Suite *Suite
	Name  string
	Pos   token.Position
	Code  string   // source of the expression
	Expr  ast.Expr // nil if skipped or if the code failed to parse

	// Want is the expected value, compared with eval.SameValue. It is nil if
	// an error is expected.
	Want eval.Value
	// WantErr is a substring of the expected error message.
	WantErr string

	// Skip is the reason the case is skipped, empty if it runs.
	Skip string

	// LoadErr is set if the case failed to load, e.g. if its code is not a
	// valid expression.
	LoadErr error

	// filename used to evaluate the expression: the script file for scripts,
	// empty for YAML cases as positions are relative to the code.
	evalFile string
}

func (c *Case) String() string {
	return c.Pos.String() + ": " + c.Name
}

// DefaultSuites returns the suites embedded in the package.
func DefaultSuites() ([]*Suite, error) {
	return LoadFS(defaultSuites, "suites")
}

// LoadPaths loads the suites at the provided paths. A path may be a suite
// file or a directory, in which case all suite files found recursively in it
// are loaded. Errors are collected so that all valid suites are returned.
func LoadPaths(paths ...string) ([]*Suite, error) {
	var (
		suites []*Suite
		errs   []error
	)
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if !fi.IsDir() {
			s, err := loadFile(os.ReadFile, p)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			suites = append(suites, s)
			continue
		}

		root := os.DirFS(p)
		ss, err := LoadFS(root, ".")
		for _, s := range ss {
			s.File = filepath.Join(p, filepath.FromSlash(s.File))
			for _, c := range s.Cases {
				c.Pos.Filename = s.File
				if c.evalFile != "" {
					c.evalFile = s.File
				}
			}
		}
		suites = append(suites, ss...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return suites, errors.Join(errs...)
}

// LoadFS loads all suite files found recursively under root in fsys, in
// lexical order.
func LoadFS(fsys fs.FS, root string) ([]*Suite, error) {
	var (
		suites []*Suite
		errs   []error
	)
	readFile := func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) }

	err := fs.WalkDir(fsys, root, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() || !isSuiteFile(p) {
			return nil
		}

		s, err := loadFile(readFile, p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		suites = append(suites, s)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return suites, errors.Join(errs...)
}

func isSuiteFile(name string) bool {
	switch path.Ext(name) {
	case ScriptExt, YAMLExt, ".yml":
		return true
	}
	return false
}

func loadFile(readFile func(string) ([]byte, error), name string) (*Suite, error) {
	b, err := readFile(name)
	if err != nil {
		return nil, err
	}

	switch path.Ext(filepath.ToSlash(name)) {
	case ScriptExt:
		return LoadScript(name, b)
	case YAMLExt, ".yml":
		return LoadYAML(name, b)
	}
	return nil, fmt.Errorf("%s: unsupported suite file extension", name)
}

// LoadScript loads a suite from a script, where each assert statement is a
// test case that passes if its expression evaluates to true. Syntax errors
// in the script fail the load of the whole suite.
func LoadScript(filename string, src []byte) (*Suite, error) {
	ch, err := parser.ParseChunk(0, filename, src)
	if err != nil {
		return nil, err
	}

	s := &Suite{
		Name: suiteName(filename),
		File: filename,
	}
	lines := strings.Split(string(src), "\n")
	for _, stmt := range ch.Stmts {
		as, ok := stmt.(*ast.AssertStmt)
		if !ok {
			continue
		}

		start, end := as.Expr.Span()
		code := spanText(lines, start, end)
		s.Cases = append(s.Cases, &Case{
			Suite:    s,
			Name:     "assert " + code,
			Pos:      as.Assert.Position(filename),
			Code:     code,
			Expr:     as.Expr,
			Want:     eval.True,
			evalFile: filename,
		})
	}
	return s, nil
}

// LoadYAML loads a suite from a YAML file. The code of each test is parsed as
// an expression and its expectation is decoded at load time, an invalid test
// is recorded as a case with a LoadErr so that the rest of the suite can run.
func LoadYAML(filename string, src []byte) (*Suite, error) {
	var ts TestSuite
	if err := yaml.Unmarshal(src, &ts); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	s := &Suite{
		Name:        ts.Name,
		Description: strings.TrimSpace(ts.Description),
		File:        filename,
	}
	if s.Name == "" {
		s.Name = suiteName(filename)
	}

	for i := range ts.Tests {
		tc := &ts.Tests[i]
		c := &Case{
			Suite: s,
			Name:  tc.Name,
			Pos:   token.MakePosition(filename, tc.Line, tc.Column),
			Code:  strings.TrimSpace(tc.Code),
		}
		if c.Name == "" {
			c.Name = c.Code
		}
		s.Cases = append(s.Cases, c)

		if skip, reason := tc.IsSkipped(); skip {
			c.Skip = reason
			continue
		}

		if c.Want, c.WantErr, c.LoadErr = decodeExpect(tc.Expect); c.LoadErr != nil {
			continue
		}
		if c.Code == "" {
			c.LoadErr = errors.New("missing code")
			continue
		}
		if c.Expr, c.LoadErr = parser.ParseExpr("", []byte(c.Code)); c.LoadErr != nil {
			c.Expr = nil
		}
	}
	return s, nil
}

func decodeExpect(exp Expectation) (want eval.Value, wantErr string, err error) {
	var n int
	if exp.Value.Kind != 0 {
		n++
	}
	if exp.NaN {
		n++
	}
	if exp.Error != "" {
		n++
	}
	if n != 1 {
		return nil, "", errors.New("expectation must have exactly one of value, nan or error")
	}

	switch {
	case exp.NaN:
		return number.NaN(), "", nil
	case exp.Error != "":
		return nil, exp.Error, nil
	}

	if exp.Value.Kind != yaml.ScalarNode {
		return nil, "", fmt.Errorf("invalid expected value at line %d: must be a scalar", exp.Value.Line)
	}
	v, err := ParseValue(exp.Value.Value)
	if err != nil {
		return nil, "", fmt.Errorf("invalid expected value at line %d: %w", exp.Value.Line, err)
	}
	return v, "", nil
}

// ParseValue parses the literal representation of a value: true, false or a
// number as accepted by number.Parse.
func ParseValue(s string) (eval.Value, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return eval.True, nil
	case "false":
		return eval.False, nil
	}
	n, err := number.Parse(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func suiteName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// spanText returns the source text between start and end, with lines
// separated by a single space.
func spanText(lines []string, start, end token.Pos) string {
	sl, sc := start.LineCol()
	el, ec := end.LineCol()
	if sl < 1 || el > len(lines) || sl > el {
		return ""
	}

	var parts []string
	for l := sl; l <= el; l++ {
		line := strings.TrimRight(lines[l-1], "\r")
		from, to := 1, utf8.RuneCountInString(line)+1
		if l == sl {
			from = sc
		}
		if l == el {
			to = ec
		}
		parts = append(parts, strings.TrimSpace(runeSlice(line, from, to)))
	}
	return strings.Join(parts, " ")
}

// runeSlice returns the runes of s in the 1-based column range [from, to).
func runeSlice(s string, from, to int) string {
	runes := []rune(s)
	if from < 1 {
		from = 1
	}
	if to > len(runes)+1 {
		to = len(runes) + 1
	}
	if from >= to {
		return ""
	}
	return string(runes[from-1 : to-1])
}
