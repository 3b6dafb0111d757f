package conformance

import "gopkg.in/yaml.v3"

// TestSuite represents a complete YAML suite file.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a YAML suite.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Code        string      `yaml:"code"`           // expression
	Expect      Expectation `yaml:"expect"`

	// Line and Column are the position of the test in the YAML file.
	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// Expectation defines what result is expected from a test. Exactly one of
// Value, NaN or Error must be set.
type Expectation struct {
	// Value is a number literal (e.g. 1.5, -0, Infinity, NaN) or a boolean
	// (true, false). It is kept as a raw node so that the literal is not
	// interpreted by the YAML decoder, which would lose the sign of -0.
	Value yaml.Node `yaml:"value,omitempty"`
	NaN   bool      `yaml:"nan,omitempty"`
	Error string    `yaml:"error,omitempty"` // substring of the error message
}

// UnmarshalYAML implements yaml.Unmarshaler to record the position of the
// test case.
func (tc *TestCase) UnmarshalYAML(node *yaml.Node) error {
	type plain TestCase
	if err := node.Decode((*plain)(tc)); err != nil {
		return err
	}
	tc.Line, tc.Column = node.Line, node.Column
	return nil
}

// IsSkipped returns true if this test should be skipped, along with the
// reason.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
	case string:
		return true, v
	}
	return false, ""
}
