package token

import "fmt"

const (
	lineBits = 18
	colBits  = 32 - lineBits

	// MaxLines is the maximum 1-based line number value that can be encoded in
	// Pos.
	MaxLines = (1 << lineBits) - 1
	// MaxCols is the maximum 1-based column number value that can be encoded in
	// Pos.
	MaxCols = (1 << colBits) - 1

	lineMask = MaxLines
	colMask  = MaxCols
)

// Pos is an efficient encoding of a 1-based line and column position in a
// 32-bit unsigned integer. A value of 0 for either line or column should be
// interpreted as "unknown".
type Pos uint32

// MakePos creates a Pos value encoding the provided line and col. It is the
// caller's responsibility to ensure the values are > 0 and <= the maximum
// allowed.
func MakePos(line, col int) Pos {
	return Pos(col<<lineBits | line)
}

// LineCol returns the line and column values encoded in Pos.
func (p Pos) LineCol() (int, int) {
	l := p & lineMask
	c := (p >> lineBits) & colMask
	return int(l), int(c)
}

// Unknown returns true if either line or column value is unknown.
func (p Pos) Unknown() bool {
	l, c := p.LineCol()
	return l == 0 || c == 0
}

// Position returns the full Position of p in the file filename.
func (p Pos) Position(filename string) Position {
	l, c := p.LineCol()
	return Position{Filename: filename, Line: l, Column: c}
}

// Position describes a source position including the file.
type Position struct {
	Filename string
	Line     int // 1-based, 0 if unknown
	Column   int // 1-based, 0 if unknown
}

// MakePosition returns the Position for the provided file, line and column.
func MakePosition(filename string, line, col int) Position {
	return Position{Filename: filename, Line: line, Column: col}
}

// IsValid returns true if the position has a known line.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns a string in one of several forms:
//
//	file:line:column    valid position with file name
//	file:line           valid position with file name but no column (column == 0)
//	line:column         valid position without file name
//	line                valid position without file name and no column (column == 0)
//	file                invalid position with file name
//	-                   invalid position without file name
func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprint(p.Line)
		if p.Column != 0 {
			s += fmt.Sprintf(":%d", p.Column)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}

// PosMode controls how positions are formatted by FormatPos.
type PosMode int

// List of position formatting modes.
const (
	PosNone    PosMode = iota // no position
	PosLineCol                // line:col
	PosLong                   // filename:line:col
)

// FormatPos formats pos according to mode, filename is only used with
// PosLong.
func FormatPos(mode PosMode, filename string, pos Pos) string {
	switch mode {
	case PosLineCol:
		return pos.Position("").String()
	case PosLong:
		return pos.Position(filename).String()
	}
	return ""
}
