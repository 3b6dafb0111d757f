package scanner

// comment scans a line or block comment, the opening '/' is already consumed
// and s.cur is the second '/' or the '*'.
func (s *Scanner) comment() (lit, val string) {
	// '/' opening already consumed, hence the -1
	startOff, startLine, startCol := s.off-1, s.line, s.col-1

	if s.advanceIf('*') {
		return s.blockComment(startOff, startLine, startCol)
	}

	s.advance() // second '/'
	for s.cur != '\n' && s.cur != -1 {
		s.advance()
	}
	return string(s.src[startOff:s.off]), string(s.src[startOff+2 : s.off])
}

func (s *Scanner) blockComment(startOff, startLine, startCol int) (lit, val string) {
	for s.cur != -1 {
		if s.advanceIf('*') && s.advanceIf('/') {
			return string(s.src[startOff:s.off]), string(s.src[startOff+2 : s.off-2])
		}
		if s.cur != '*' {
			s.advance()
		}
	}

	s.error(startOff, startLine, startCol, "block comment not terminated")
	return string(s.src[startOff:s.off]), string(s.src[startOff+2 : s.off])
}
