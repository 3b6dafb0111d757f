package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "ecmanum"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Evaluation and conformance tool for the ECMAScript number arithmetic.

The <command> can be one of:
       check [<path>...]         Run the conformance suites found at the
                                 paths (.bx scripts and .yaml suites,
                                 directories are searched recursively)
                                 and print the violations. Without a
                                 path, run the embedded default suites.
       eval [--] <expr>...       Evaluate each expression and print its
                                 value. Every argument after eval is an
                                 expression, including those that start
                                 with a '-'.
       parse <file>...           Execute the parser phase and print the
                                 resulting abstract syntax tree (AST).
       tokenize <file>...        Execute the scanner phase and print the
                                 resulting tokens.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Valid flag options for the <parse> command are:
       --with-comments           Include comments in the AST (excluded
                                 by default).

Valid flag options for the <check> command are:
       --jobs N                  Evaluate at most N cases concurrently
                                 (defaults to the number of CPUs).
       --verbose                 Print the status of every case, not
                                 only the violations.

The check flags can also be set with the environment variables
%[2]sJOBS and %[2]sVERBOSE.
`, binName, envPrefix)
)

var envPrefix = strings.ToUpper(binName) + "_"

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	WithComments bool `flag:"with-comments"`
	Jobs         int  `flag:"jobs" env:"JOBS"`
	Verbose      bool `flag:"verbose" env:"VERBOSE"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	switch cmdName {
	case "tokenize", "parse":
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: at least one file must be provided", cmdName)
		}
	case "eval":
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: at least one expression must be provided", cmdName)
		}
	}

	if c.flags["with-comments"] && cmdName != "parse" {
		return fmt.Errorf("%s: invalid flag 'with-comments'", cmdName)
	}
	for _, flag := range []string{"jobs", "verbose"} {
		if c.flags[flag] && cmdName != "check" {
			return fmt.Errorf("%s: invalid flag '%s'", cmdName, flag)
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%s: invalid number of jobs: %d", cmdName, c.Jobs)
	}

	return nil
}

// endEvalFlags returns args with a "--" inserted after the eval command name,
// so that expressions such as "-9 / 0" are not parsed as flags. The first
// element of args is the program name.
func endEvalFlags(args []string) []string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if arg != "eval" || (i+1 < len(args) && args[i+1] == "--") {
			return args
		}
		res := make([]string, 0, len(args)+1)
		res = append(res, args[:i+1]...)
		res = append(res, "--")
		return append(res, args[i+1:]...)
	}
	return args
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: envPrefix,
	}
	if err := p.Parse(endEvalFlags(args), c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

// valid commands are those that take a mainer.Stdio and a slice of strings as
// input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
