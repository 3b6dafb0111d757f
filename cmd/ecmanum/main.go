// Command ecmanum evaluates ECMAScript number expressions and runs the
// arithmetic conformance suites. Run `ecmanum --help` for usage.
package main

import (
	"os"

	"github.com/mna/ecmanum/internal/maincmd"
	"github.com/mna/mainer"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
