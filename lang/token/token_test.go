package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok <= maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, ASSERT, LookupKw("assert"))
	assert.Equal(t, IDENT, LookupKw("NaN"))
	assert.Equal(t, IDENT, LookupKw("Assert"))

	for tok := punctStart; tok <= punctEnd; tok++ {
		assert.Equal(t, tok, LookupPunct(tok.String()), tok.String())
	}
	assert.Equal(t, ILLEGAL, LookupPunct("=="))
}

func TestOperators(t *testing.T) {
	binops := []Token{PLUS, MINUS, STAR, SLASH, EQEQEQ, BANGEQEQ}
	unops := []Token{PLUS, MINUS, BANG}
	for tok := Token(0); tok <= maxToken; tok++ {
		assert.Equal(t, contains(binops, tok), tok.IsBinop(), "binop %s", tok)
		assert.Equal(t, contains(unops, tok), tok.IsUnop(), "unop %s", tok)
	}
}

func contains(toks []Token, tok Token) bool {
	for _, t := range toks {
		if t == tok {
			return true
		}
	}
	return false
}

func TestPos(t *testing.T) {
	p := MakePos(12, 34)
	l, c := p.LineCol()
	assert.Equal(t, 12, l)
	assert.Equal(t, 34, c)
	assert.False(t, p.Unknown())
	assert.True(t, Pos(0).Unknown())

	p = MakePos(MaxLines, MaxCols)
	l, c = p.LineCol()
	assert.Equal(t, MaxLines, l)
	assert.Equal(t, MaxCols, c)

	assert.Equal(t, "", FormatPos(PosNone, "a.bx", MakePos(1, 2)))
	assert.Equal(t, "1:2", FormatPos(PosLineCol, "a.bx", MakePos(1, 2)))
	assert.Equal(t, "a.bx:1:2", FormatPos(PosLong, "a.bx", MakePos(1, 2)))
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "a.bx", Position{Filename: "a.bx"}.String())
}
