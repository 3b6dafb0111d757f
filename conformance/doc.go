// Package conformance loads and runs conformance suites of the number
// arithmetic. A suite is either a script (.bx) of assert statements, or a
// YAML file (.yaml) that lists expressions with their expected value or
// error. Cases are evaluated concurrently and any case whose actual result
// does not match the expected one is reported through a Reporter.
//
// The suites reproducing the ECMAScript multiplicative operator rules are
// embedded in the package, see DefaultSuites.
package conformance
