package units

import "fmt"

// maxNestingDepth bounds parenthesis nesting so adversarial input returns
// a SyntaxError instead of exhausting the stack.
const maxNestingDepth = 64

// Parser reduces unit expressions to SI factors against a registry. A
// parser may be reused; each Parse call starts a fresh token stream.
type Parser struct {
	reg   *Registry
	ts    *TokenStream
	depth int
}

// NewParser returns a parser resolving identifiers through reg.
func NewParser(reg *Registry) *Parser {
	return &Parser{reg: reg}
}

var defaultRegistry = NewRegistry()

// Parse reduces a unit expression to its SI factors using the default
// registry. It is a pure function of its input: no state survives between
// calls.
func Parse(expression string) (Factors, error) {
	return NewParser(defaultRegistry).Parse(expression)
}

// Parse reduces a unit expression to its SI factors. The whole input must
// form one expression; trailing tokens are an error.
func (p *Parser) Parse(expression string) (Factors, error) {
	p.ts = NewTokenStream(expression)
	p.depth = 0
	f, err := p.expression()
	if err != nil {
		return Factors{}, err
	}
	t, err := p.ts.Get()
	if err != nil {
		return Factors{}, err
	}
	if t.Type != TOKEN_EOF {
		return Factors{}, &SyntaxError{Msg: fmt.Sprintf("unexpected token %q", t.Literal)}
	}
	return f, nil
}

// expression := term ( ("*" | "/") term )*
// Stops on EOF; any other unexpected token is pushed back for the caller.
func (p *Parser) expression() (Factors, error) {
	f, err := p.term()
	if err != nil {
		return Factors{}, err
	}
	for {
		t, err := p.ts.Get()
		if err != nil {
			return Factors{}, err
		}
		switch t.Type {
		case TOKEN_STAR:
			g, err := p.term()
			if err != nil {
				return Factors{}, err
			}
			if f, err = f.Mul(g); err != nil {
				return Factors{}, err
			}
		case TOKEN_SLASH:
			g, err := p.term()
			if err != nil {
				return Factors{}, err
			}
			if f, err = f.Div(g); err != nil {
				return Factors{}, err
			}
		case TOKEN_EOF:
			return f, nil
		default:
			p.ts.Putback(t)
			return f, nil
		}
	}
}

// term := unit ( "**" numberterm )*
func (p *Parser) term() (Factors, error) {
	f, err := p.unit()
	if err != nil {
		return Factors{}, err
	}
	for {
		t, err := p.ts.Get()
		if err != nil {
			return Factors{}, err
		}
		if t.Type != TOKEN_STARSTAR {
			p.ts.Putback(t)
			return f, nil
		}
		e, err := p.numberterm(false)
		if err != nil {
			return Factors{}, err
		}
		if f, err = f.Pow(e); err != nil {
			return Factors{}, err
		}
	}
}

// unit := IDENTIFIER | "(" expression ")"
func (p *Parser) unit() (Factors, error) {
	t, err := p.ts.Get()
	if err != nil {
		return Factors{}, err
	}
	switch t.Type {
	case TOKEN_IDENT:
		if f, ok := p.reg.Lookup(t.Literal); ok {
			return f, nil
		}
		return Factors{}, &SyntaxError{Msg: fmt.Sprintf("unknown unit %q", t.Literal)}
	case TOKEN_LPAREN:
		if err := p.enter(); err != nil {
			return Factors{}, err
		}
		f, err := p.expression()
		p.depth--
		if err != nil {
			return Factors{}, err
		}
		if err := p.expectRParen(); err != nil {
			return Factors{}, err
		}
		return f, nil
	}
	return Factors{}, &SyntaxError{Msg: fmt.Sprintf("expected a unit, got %q", t.Literal)}
}

// numberterm := number ( ("*" | "/") number )*
// The multiplicative forms are only accepted inside a parenthesized
// exponent, so a bare product directly after "**" does not parse.
func (p *Parser) numberterm(inpar bool) (Factors, error) {
	f, err := p.number()
	if err != nil {
		return Factors{}, err
	}
	for {
		t, err := p.ts.Get()
		if err != nil {
			return Factors{}, err
		}
		switch {
		case inpar && t.Type == TOKEN_STAR:
			g, err := p.number()
			if err != nil {
				return Factors{}, err
			}
			if f, err = f.Mul(g); err != nil {
				return Factors{}, err
			}
		case inpar && t.Type == TOKEN_SLASH:
			g, err := p.number()
			if err != nil {
				return Factors{}, err
			}
			if f, err = f.Div(g); err != nil {
				return Factors{}, err
			}
		default:
			p.ts.Putback(t)
			return f, nil
		}
	}
}

// number := "(" numberterm ")" | NUMBER | "-" number | "+" number
func (p *Parser) number() (Factors, error) {
	t, err := p.ts.Get()
	if err != nil {
		return Factors{}, err
	}
	switch t.Type {
	case TOKEN_LPAREN:
		if err := p.enter(); err != nil {
			return Factors{}, err
		}
		f, err := p.numberterm(true)
		p.depth--
		if err != nil {
			return Factors{}, err
		}
		if err := p.expectRParen(); err != nil {
			return Factors{}, err
		}
		return f, nil
	case TOKEN_NUMBER:
		f := One()
		if _, ok := f.Multiplier.SetString(t.Literal); !ok {
			return Factors{}, &SyntaxError{Msg: fmt.Sprintf("invalid number %q", t.Literal)}
		}
		return f, nil
	case TOKEN_MINUS:
		f, err := p.number()
		if err != nil {
			return Factors{}, err
		}
		return f.Neg(), nil
	case TOKEN_PLUS:
		return p.number()
	}
	return Factors{}, &SyntaxError{Msg: fmt.Sprintf("expected a number, got %q", t.Literal)}
}

func (p *Parser) enter() error {
	if p.depth >= maxNestingDepth {
		return &SyntaxError{Msg: fmt.Sprintf("parentheses nested deeper than %d", maxNestingDepth)}
	}
	p.depth++
	return nil
}

func (p *Parser) expectRParen() error {
	t, err := p.ts.Get()
	if err != nil {
		return err
	}
	if t.Type != TOKEN_RPAREN {
		return &SyntaxError{Msg: fmt.Sprintf("expected \")\", got %q", t.Literal)}
	}
	return nil
}
