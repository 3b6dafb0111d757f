package token

import "strconv"

// A Token represents a lexical token.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota
	EOF

	// Tokens with values
	COMMENT // // comment or /* comment */
	IDENT   // x
	NUMBER  // 123, 1.23e45, 0x7f

	// Punctuation

	// operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	BANG     // !
	EQEQEQ   // ===
	BANGEQEQ // !==

	// punctuation
	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )

	// Keywords
	ASSERT

	maxToken             = ASSERT
	litStart, litEnd     = COMMENT, NUMBER
	punctStart, punctEnd = PLUS, RPAREN
	kwStart, kwEnd       = ASSERT, ASSERT
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens. Use Sprintf("%#v",
// tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= punctStart && tok <= punctEnd {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

// IsUnop returns true if tok is a unary operator.
func (tok Token) IsUnop() bool {
	return tok == MINUS || tok == PLUS || tok == BANG
}

// IsBinop returns true if tok is a binary operator.
func (tok Token) IsBinop() bool {
	return tok >= PLUS && tok <= BANGEQEQ && tok != BANG
}

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",

	COMMENT: "comment",
	IDENT:   "identifier",
	NUMBER:  "number literal",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	BANG:     "!",
	EQEQEQ:   "===",
	BANGEQEQ: "!==",

	SEMICOLON: ";",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",

	ASSERT: "assert",
}

var (
	keywords = func() map[string]Token {
		kw := make(map[string]Token)
		for i := kwStart; i <= kwEnd; i++ {
			kw[tokenNames[i]] = i
		}
		return kw
	}()
	punctuations = func() map[string]Token {
		puncts := make(map[string]Token)
		for i := punctStart; i <= punctEnd; i++ {
			puncts[tokenNames[i]] = i
		}
		return puncts
	}()
)

// LookupKw maps an identifier to its keyword token or IDENT (if not a
// keyword).
func LookupKw(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupPunct maps a punctuation to its token or ILLEGAL (if not a valid
// punctuation).
func LookupPunct(punct string) Token {
	if tok, ok := punctuations[punct]; ok {
		return tok
	}
	return ILLEGAL
}

// Value records the raw text, position and decoded value associated with
// each token.
type Value struct {
	Raw    string  // raw text of token
	Float  float64 // decoded number
	String string  // decoded comment text
	Pos    Pos     // start position of token
	End    Pos     // position immediately after the token
}

// Literal returns the string representation of the literal value of the token
// from its associated Value struct. If t is not a literal, it returns an empty
// string.
func (tok Token) Literal(v Value) string {
	switch tok {
	case IDENT:
		return v.Raw
	case COMMENT:
		return strconv.Quote(v.String)
	case NUMBER:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return ""
	}
}
