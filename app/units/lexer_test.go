package units

import (
	"strings"
	"testing"
)

// lexAll drains the stream, failing the test on a lex error.
func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	ts := NewTokenStream(input)
	var tokens []Token
	for {
		tok, err := ts.Get()
		if err != nil {
			t.Fatalf("Get() on %q error: %v", input, err)
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens
		}
	}
}

func TestTokenStreamGet(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"m", []Token{
			{TOKEN_IDENT, "m"},
			{TOKEN_EOF, ""},
		}},
		{"kg*m/s**2", []Token{
			{TOKEN_IDENT, "kg"},
			{TOKEN_STAR, "*"},
			{TOKEN_IDENT, "m"},
			{TOKEN_SLASH, "/"},
			{TOKEN_IDENT, "s"},
			{TOKEN_STARSTAR, "**"},
			{TOKEN_NUMBER, "2"},
			{TOKEN_EOF, ""},
		}},
		{"(km/h)**-12", []Token{
			{TOKEN_LPAREN, "("},
			{TOKEN_IDENT, "km"},
			{TOKEN_SLASH, "/"},
			{TOKEN_IDENT, "h"},
			{TOKEN_RPAREN, ")"},
			{TOKEN_STARSTAR, "**"},
			{TOKEN_MINUS, "-"},
			{TOKEN_NUMBER, "12"},
			{TOKEN_EOF, ""},
		}},
		{"s**(+1/2)", []Token{
			{TOKEN_IDENT, "s"},
			{TOKEN_STARSTAR, "**"},
			{TOKEN_LPAREN, "("},
			{TOKEN_PLUS, "+"},
			{TOKEN_NUMBER, "1"},
			{TOKEN_SLASH, "/"},
			{TOKEN_NUMBER, "2"},
			{TOKEN_RPAREN, ")"},
			{TOKEN_EOF, ""},
		}},
		// µ and Ω are part of the identifier alphabet
		{"µm*Ω", []Token{
			{TOKEN_IDENT, "µm"},
			{TOKEN_STAR, "*"},
			{TOKEN_IDENT, "Ω"},
			{TOKEN_EOF, ""},
		}},
		// a trailing single star must not read past the input
		{"m*", []Token{
			{TOKEN_IDENT, "m"},
			{TOKEN_STAR, "*"},
			{TOKEN_EOF, ""},
		}},
		// digits and letters end each other's runs
		{"2m", []Token{
			{TOKEN_NUMBER, "2"},
			{TOKEN_IDENT, "m"},
			{TOKEN_EOF, ""},
		}},
		{"", []Token{
			{TOKEN_EOF, ""},
		}},
	}

	for _, tt := range tests {
		got := lexAll(t, tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("lex(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("lex(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenStreamErrors(t *testing.T) {
	tests := []struct {
		input string
		sub   string // expected error substring
	}{
		{"100", "exceeds 2 digits"},
		{"m**100", "exceeds 2 digits"},
		{strings.Repeat("m", 129), "exceeds 128 characters"},
		{" m", "unrecognized character"},
		{"kg m", "unrecognized character"},
		{"9.9", "unrecognized character"},
		{"m^2", "unrecognized character"},
		{"°C", "unrecognized character"},
	}

	for _, tt := range tests {
		ts := NewTokenStream(tt.input)
		var err error
		for i := 0; i < 8; i++ {
			if _, err = ts.Get(); err != nil {
				break
			}
		}
		if err == nil {
			t.Errorf("lex(%.20q): expected error, got none", tt.input)
			continue
		}
		if _, ok := err.(*SyntaxError); !ok {
			t.Errorf("lex(%.20q) error = %T, want *SyntaxError", tt.input, err)
		}
		if !strings.Contains(err.Error(), tt.sub) {
			t.Errorf("lex(%.20q) error = %q, want substring %q", tt.input, err, tt.sub)
		}
	}
}

func TestTokenStreamIdentAtCap(t *testing.T) {
	// Exactly 128 characters is still a valid identifier (it just won't
	// resolve to a unit).
	input := strings.Repeat("m", 128)
	tokens := lexAll(t, input)
	if len(tokens) != 2 || tokens[0].Type != TOKEN_IDENT || tokens[0].Literal != input {
		t.Errorf("lex of 128-char identifier = %v", tokens)
	}
}

func TestPutback(t *testing.T) {
	ts := NewTokenStream("m/s")

	tok, err := ts.Get()
	if err != nil || tok.Literal != "m" {
		t.Fatalf("first Get() = %v, %v", tok, err)
	}
	ts.Putback(tok)
	tok, err = ts.Get()
	if err != nil || tok.Literal != "m" {
		t.Fatalf("Get() after Putback = %v, %v", tok, err)
	}

	// The rest of the stream is undisturbed.
	tok, _ = ts.Get()
	if tok.Type != TOKEN_SLASH {
		t.Errorf("expected /, got %v", tok)
	}
	tok, _ = ts.Get()
	if tok.Literal != "s" {
		t.Errorf("expected s, got %v", tok)
	}
	tok, _ = ts.Get()
	if tok.Type != TOKEN_EOF {
		t.Errorf("expected EOF, got %v", tok)
	}

	// EOF tokens can be pushed back too.
	ts.Putback(tok)
	tok, _ = ts.Get()
	if tok.Type != TOKEN_EOF {
		t.Errorf("expected EOF after putback, got %v", tok)
	}
}
