package units

// SyntaxError reports a lexical or grammar violation: an unrecognized
// character, an over-long literal, an unknown unit, a missing parenthesis,
// or an unexpected token.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// DimensionError reports an invalid dimensional combination: multiplying or
// dividing two offset-bearing quantities, raising an offset-bearing quantity
// to a power, or dividing by a zero multiplier.
type DimensionError struct {
	Msg string
}

func (e *DimensionError) Error() string {
	return e.Msg
}
