package conformance_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mna/ecmanum/conformance"
	"github.com/mna/ecmanum/lang/eval"
	"github.com/mna/ecmanum/lang/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDefaultSuites(t *testing.T) {
	defer goleak.VerifyNone(t)

	suites, err := conformance.DefaultSuites()
	require.NoError(t, err)
	require.Len(t, suites, 2)
	assert.Equal(t, "binary-expressions", suites[0].Name)
	assert.Equal(t, "signed-values", suites[1].Name)
	assert.NotEmpty(t, suites[1].Description)

	var violations []conformance.Violation
	r := conformance.Runner{
		Jobs: 4,
		Reporter: conformance.ReporterFunc(func(v conformance.Violation) {
			violations = append(violations, v)
		}),
	}
	sum, err := r.Run(context.Background(), suites...)
	require.NoError(t, err)
	for _, v := range violations {
		t.Error(v)
	}
	assert.True(t, sum.OK())
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, len(suites[0].Cases)+len(suites[1].Cases), sum.Total())
	assert.Greater(t, sum.Passed, 100)
}

func TestLoadScript(t *testing.T) {
	suites, err := conformance.LoadPaths(filepath.Join("testdata", "pass.bx"))
	require.NoError(t, err)
	require.Len(t, suites, 1)

	s := suites[0]
	assert.Equal(t, "pass", s.Name)
	require.Len(t, s.Cases, 2)

	c0, c1 := s.Cases[0], s.Cases[1]
	assert.Equal(t, "1 + 2 === 3", c0.Code)
	assert.Equal(t, "assert 1 + 2 === 3", c0.Name)
	assert.Equal(t, "testdata/pass.bx:1:1", filepath.ToSlash(c0.Pos.String()))
	assert.Equal(t, eval.True, c0.Want)
	assert.Same(t, s, c0.Suite)

	assert.Equal(t, "sameValue(0 / -9, -0)", c1.Code)
	assert.Equal(t, 2, c1.Pos.Line)
}

func TestLoadScriptSyntaxError(t *testing.T) {
	suites, err := conformance.LoadPaths(filepath.Join("testdata", "syntax.bx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax.bx:2:1: expected expression, found end of file")
	assert.Empty(t, suites)
}

func TestLoadPathsErrors(t *testing.T) {
	suites, err := conformance.LoadPaths(
		filepath.Join("testdata", "pass.bx"),
		filepath.Join("testdata", "no-such-file.bx"),
		filepath.Join("testdata", "dir", "nested", "readme.txt"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.bx")
	assert.Contains(t, err.Error(), "unsupported suite file extension")
	require.Len(t, suites, 1)
	assert.Equal(t, "pass", suites[0].Name)
}

func TestLoadDir(t *testing.T) {
	dir := filepath.Join("testdata", "dir")
	suites, err := conformance.LoadPaths(dir)
	require.NoError(t, err)
	require.Len(t, suites, 2)

	a, b := suites[0], suites[1]
	assert.Equal(t, "dir-a", a.Name)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), a.File)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, filepath.Join(dir, "nested", "b.bx"), b.File)
	require.Len(t, b.Cases, 1)
	assert.Equal(t, b.File, b.Cases[0].Pos.Filename)

	require.Len(t, a.Cases, 9)
	byName := make(map[string]*conformance.Case)
	for _, c := range a.Cases {
		byName[c.Name] = c
	}

	c := byName["negative zero"]
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Pos.Line)
	assert.True(t, eval.SameValue(number.Zero(number.Negative), c.Want))
	assert.NoError(t, c.LoadErr)
	assert.NotNil(t, c.Expr)

	c = byName["NaN"]
	require.NotNil(t, c)
	assert.True(t, eval.SameValue(number.NaN(), c.Want))

	c = byName["expected error"]
	require.NotNil(t, c)
	assert.Nil(t, c.Want)
	assert.Equal(t, "undefined: nope", c.WantErr)

	c = byName["skipped"]
	require.NotNil(t, c)
	assert.Equal(t, "skipped", c.Skip)
	assert.Nil(t, c.Expr)

	for _, name := range []string{"bad code", "bad expectation", "two expectations"} {
		c = byName[name]
		require.NotNil(t, c, name)
		assert.Error(t, c.LoadErr, name)
	}
}

func TestRunner(t *testing.T) {
	defer goleak.VerifyNone(t)

	suites, err := conformance.LoadPaths(
		filepath.Join("testdata", "pass.bx"),
		filepath.Join("testdata", "fail.bx"),
		filepath.Join("testdata", "dir"),
	)
	require.NoError(t, err)

	for _, jobs := range []int{0, 1, 3} {
		var violations []string
		r := conformance.Runner{
			Jobs: jobs,
			Reporter: conformance.ReporterFunc(func(v conformance.Violation) {
				violations = append(violations, filepath.ToSlash(v.String()))
			}),
		}
		sum, err := r.Run(context.Background(), suites...)
		require.NoError(t, err)

		assert.False(t, sum.OK())
		assert.Equal(t, 7, sum.Passed, "jobs=%d", jobs)
		assert.Equal(t, 4, sum.Failed, "jobs=%d", jobs)
		assert.Equal(t, 1, sum.Skipped, "jobs=%d", jobs)
		assert.Equal(t, 4, sum.Errored, "jobs=%d", jobs)
		assert.Equal(t, "7 passed, 4 failed, 1 skipped, 4 errors", sum.String())
		require.Len(t, sum.Results, 16)

		// violations are reported in order
		want := []string{
			"testdata/fail.bx:1:1: assert 1 + 2 === 4: want true, got false",
			"testdata/fail.bx:3:1: assert -(1 === 1): want true, got error: testdata/fail.bx:3:8: invalid operand for unary -: boolean",
			"testdata/fail.bx:4:1: assert 1 + 1: want true, got 2",
			"testdata/dir/a.yaml:7:5: wrong zero: want -0, got 0",
			`testdata/dir/a.yaml:18:5: wrong error: want error containing "boom", got 1`,
		}
		require.GreaterOrEqual(t, len(violations), len(want)+3)
		assert.Equal(t, want, violations[:len(want)])
		for _, v := range violations[len(want):] {
			assert.Contains(t, v, "invalid test: ")
		}
	}
}

func TestRunnerCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	suites, err := conformance.DefaultSuites()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called bool
	r := conformance.Runner{Reporter: conformance.ReporterFunc(func(conformance.Violation) { called = true })}
	sum, err := r.Run(ctx, suites...)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sum)
	assert.False(t, called)
}

func TestRunnerUniverse(t *testing.T) {
	src := []byte("assert double(2) === 4\nassert sameValue(double(-0), -0)\n")
	s, err := conformance.LoadScript("universe.bx", src)
	require.NoError(t, err)

	u := eval.DefaultUniverse()
	u.Define("double", eval.NewBuiltin("double", 1, func(args []eval.Value) (eval.Value, error) {
		n := args[0].(number.Number)
		return number.Add(n, n), nil
	}))

	r := conformance.Runner{Universe: u}
	sum, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Passed)
	assert.True(t, sum.OK())
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"x/one.bx":   {Data: []byte("assert 1 === 1\n")},
		"x/two.yaml": {Data: []byte("tests:\n  - code: 2 * 3\n    expect:\n      value: 6\n")},
		"x/three.md": {Data: []byte("ignored")},
		"x/bad.yaml": {Data: []byte("tests: [")},
	}
	suites, err := conformance.LoadFS(fsys, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x/bad.yaml")
	require.Len(t, suites, 2)
	assert.Equal(t, "one", suites[0].Name)
	assert.Equal(t, "two", suites[1].Name)
	require.Len(t, suites[1].Cases, 1)
	assert.Equal(t, "2 * 3", suites[1].Cases[0].Name)
	assert.True(t, eval.SameValue(number.Number(6), suites[1].Cases[0].Want))
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want eval.Value
		err  bool
	}{
		{"true", eval.True, false},
		{"false", eval.False, false},
		{"-0", number.Zero(number.Negative), false},
		{"Infinity", number.Inf(number.Positive), false},
		{"1.5e3", number.Number(1500), false},
		{"True", nil, true},
		{"", nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := conformance.ParseValue(c.in)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, eval.SameValue(c.want, got), "want %s, got %s", conformance.Describe(c.want), conformance.Describe(got))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pass", conformance.Passed.String())
	assert.Equal(t, "FAIL", conformance.Failed.String())
	assert.Equal(t, "skip", conformance.Skipped.String())
	assert.Equal(t, "ERROR", conformance.Errored.String())
	assert.Equal(t, "Status(42)", conformance.Status(42).String())
}
