package units

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_NUMBER
	TOKEN_IDENT
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_STAR
	TOKEN_STARSTAR
	TOKEN_SLASH
	TOKEN_LPAREN
	TOKEN_RPAREN
)

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}
