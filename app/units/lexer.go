package units

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxNumberLen = 2   // digits in a numeric literal
	maxIdentLen  = 128 // characters in a unit identifier
)

// TokenStream produces tokens from a unit expression on demand. It holds
// the unconsumed tail of the input plus at most one pushed-back token.
type TokenStream struct {
	rest    string
	pending *Token
}

// NewTokenStream returns a stream over expression.
func NewTokenStream(expression string) *TokenStream {
	return &TokenStream{rest: expression}
}

// Putback returns a token to the front of the stream. At most one token may
// be pending at a time; Get must intervene between putbacks.
func (ts *TokenStream) Putback(t Token) {
	ts.pending = &t
}

// Get returns the next token, or a TOKEN_EOF token once the input is
// exhausted. Characters outside the expression language, whitespace
// included, are an error.
func (ts *TokenStream) Get() (Token, error) {
	if ts.pending != nil {
		t := *ts.pending
		ts.pending = nil
		return t, nil
	}
	if len(ts.rest) == 0 {
		return Token{Type: TOKEN_EOF}, nil
	}

	switch ch := ts.rest[0]; ch {
	case '+':
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_PLUS, Literal: "+"}, nil
	case '-':
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_MINUS, Literal: "-"}, nil
	case '/':
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_SLASH, Literal: "/"}, nil
	case '(':
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_LPAREN, Literal: "("}, nil
	case ')':
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_RPAREN, Literal: ")"}, nil
	case '*':
		if len(ts.rest) > 1 && ts.rest[1] == '*' {
			ts.rest = ts.rest[2:]
			return Token{Type: TOKEN_STARSTAR, Literal: "**"}, nil
		}
		ts.rest = ts.rest[1:]
		return Token{Type: TOKEN_STAR, Literal: "*"}, nil
	}

	if isDigit(ts.rest[0]) {
		return ts.lexNumber()
	}
	r, _ := utf8.DecodeRuneInString(ts.rest)
	if isUnitLetter(r) {
		return ts.lexIdent()
	}
	return Token{}, &SyntaxError{Msg: fmt.Sprintf("unrecognized character %q", r)}
}

// lexNumber consumes a run of decimal digits, capped at maxNumberLen.
func (ts *TokenStream) lexNumber() (Token, error) {
	i := 0
	for i < len(ts.rest) && isDigit(ts.rest[i]) {
		i++
		if i > maxNumberLen {
			return Token{}, &SyntaxError{
				Msg: fmt.Sprintf("numeric literal %q exceeds %d digits", ts.rest[:i], maxNumberLen),
			}
		}
	}
	lit := ts.rest[:i]
	ts.rest = ts.rest[i:]
	return Token{Type: TOKEN_NUMBER, Literal: lit}, nil
}

// lexIdent consumes a run of unit-identifier letters, capped at maxIdentLen
// characters. µ and Ω are multi-byte, so the scan is rune-aware.
func (ts *TokenStream) lexIdent() (Token, error) {
	i, n := 0, 0
	for i < len(ts.rest) {
		r, size := utf8.DecodeRuneInString(ts.rest[i:])
		if !isUnitLetter(r) {
			break
		}
		i += size
		n++
		if n > maxIdentLen {
			return Token{}, &SyntaxError{
				Msg: fmt.Sprintf("identifier exceeds %d characters", maxIdentLen),
			}
		}
	}
	lit := ts.rest[:i]
	ts.rest = ts.rest[i:]
	return Token{Type: TOKEN_IDENT, Literal: lit}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isUnitLetter reports whether r may appear in a unit identifier:
// ASCII letters plus µ and Ω.
func isUnitLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == 'µ' || r == 'Ω'
}
