package units

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Dim indexes the seven SI base dimensions.
type Dim int

const (
	DimLength      Dim = iota // m
	DimMass                   // kg
	DimTime                   // s
	DimCurrent                // A
	DimTemperature            // K
	DimAmount                 // mol
	DimLuminosity             // cd
	NumDims
)

// dimSymbols holds the SI base unit symbol for each dimension, in the fixed
// display order.
var dimSymbols = [NumDims]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Factors is the canonical reduced form of a unit expression. A raw value
// in the source unit equals Multiplier*raw + Offset in SI base units, with
// the dimension exponents in Dims. Offset is nonzero only for affine
// temperature scales and never survives a multiplicative combination.
type Factors struct {
	Multiplier *big.Rat
	Offset     *big.Rat
	Dims       [NumDims]*big.Rat
}

// One returns the dimensionless identity: multiplier 1, offset 0, all
// exponents 0.
func One() Factors {
	f := Factors{
		Multiplier: big.NewRat(1, 1),
		Offset:     new(big.Rat),
	}
	for i := range f.Dims {
		f.Dims[i] = new(big.Rat)
	}
	return f
}

// Clone returns a deep copy. Factors share no big.Rat state, so registry
// entries and parse results stay independent of each other.
func (f Factors) Clone() Factors {
	c := Factors{
		Multiplier: new(big.Rat).Set(f.Multiplier),
		Offset:     new(big.Rat).Set(f.Offset),
	}
	for i, d := range f.Dims {
		c.Dims[i] = new(big.Rat).Set(d)
	}
	return c
}

// Equal reports whether two Factors have the same multiplier, offset, and
// exponents.
func (f Factors) Equal(other Factors) bool {
	if f.Multiplier.Cmp(other.Multiplier) != 0 || f.Offset.Cmp(other.Offset) != 0 {
		return false
	}
	for i := range f.Dims {
		if f.Dims[i].Cmp(other.Dims[i]) != 0 {
			return false
		}
	}
	return true
}

// Mul combines two factors multiplicatively: multipliers multiply exactly
// and each dimension exponent is the sum of the operands'. Two
// offset-bearing quantities cannot be combined.
func (f Factors) Mul(other Factors) (Factors, error) {
	if f.Offset.Sign() != 0 && other.Offset.Sign() != 0 {
		return Factors{}, &DimensionError{Msg: "cannot multiply two offset units"}
	}
	res := One()
	res.Multiplier.Mul(f.Multiplier, other.Multiplier)
	for i := range res.Dims {
		res.Dims[i].Add(f.Dims[i], other.Dims[i])
	}
	return res, nil
}

// Div is the multiplicative inverse of Mul: multipliers divide and
// exponents subtract. Division by a zero multiplier fails.
func (f Factors) Div(other Factors) (Factors, error) {
	if f.Offset.Sign() != 0 && other.Offset.Sign() != 0 {
		return Factors{}, &DimensionError{Msg: "cannot divide two offset units"}
	}
	if other.Multiplier.Sign() == 0 {
		return Factors{}, &DimensionError{Msg: "division by zero"}
	}
	res := One()
	res.Multiplier.Quo(f.Multiplier, other.Multiplier)
	for i := range res.Dims {
		res.Dims[i].Sub(f.Dims[i], other.Dims[i])
	}
	return res, nil
}

// Neg flips the sign of the multiplier. Exponents and offset are unchanged;
// this serves unary minus on numeric exponent factors, not dimensional
// inversion.
func (f Factors) Neg() Factors {
	res := f.Clone()
	res.Multiplier.Neg(res.Multiplier)
	return res
}

// Pow raises f to the power carried in exp's multiplier. Integer exponents
// are computed exactly; fractional exponents go through float64 and come
// back as a rational approximation. Offset-bearing quantities cannot be
// exponentiated. Each dimension exponent is multiplied exactly.
func (f Factors) Pow(exp Factors) (Factors, error) {
	if f.Offset.Sign() != 0 {
		return Factors{}, &DimensionError{Msg: "cannot exponentiate an offset unit"}
	}
	e := exp.Multiplier
	m, err := ratPow(f.Multiplier, e)
	if err != nil {
		return Factors{}, err
	}
	res := One()
	res.Multiplier = m
	for i := range res.Dims {
		res.Dims[i].Mul(f.Dims[i], e)
	}
	return res, nil
}

// ratPow computes base**e. Integer e is exact via big.Int exponentiation on
// the numerator and denominator; anything else is a float64 approximation.
func ratPow(base, e *big.Rat) (*big.Rat, error) {
	if e.IsInt() {
		n := e.Num()
		if !n.IsInt64() {
			return nil, &DimensionError{Msg: fmt.Sprintf("exponent %s out of range", e.RatString())}
		}
		k := n.Int64()
		neg := k < 0
		if neg {
			k = -k
		}
		num := new(big.Int).Exp(base.Num(), big.NewInt(k), nil)
		den := new(big.Int).Exp(base.Denom(), big.NewInt(k), nil)
		if neg {
			if base.Sign() == 0 {
				return nil, &DimensionError{Msg: "division by zero"}
			}
			num, den = den, num
		}
		return new(big.Rat).SetFrac(num, den), nil
	}

	x, _ := base.Float64()
	y, _ := e.Float64()
	r := new(big.Rat)
	if r.SetFloat64(math.Pow(x, y)) == nil {
		return nil, &DimensionError{
			Msg: fmt.Sprintf("cannot raise %s to power %s", base.RatString(), e.RatString()),
		}
	}
	return r, nil
}

// String renders the debug record form, e.g. for km:
// Factors(multiplier=1000, offset=0, m=1, kg=0, s=0, A=0, K=0, mol=0, cd=0)
func (f Factors) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Factors(multiplier=%s, offset=%s", f.Multiplier.RatString(), f.Offset.RatString())
	for i, d := range f.Dims {
		fmt.Fprintf(&b, ", %s=%s", dimSymbols[i], d.RatString())
	}
	b.WriteByte(')')
	return b.String()
}

// Canonical renders the factors as a compact expression in SI base units,
// e.g. "(1/1000)*m*s**-1". The offset is not part of the rendering. A
// dimensionless 1 renders as "1".
func (f Factors) Canonical() string {
	var b strings.Builder
	if f.Multiplier.IsInt() {
		if f.Multiplier.Num().Cmp(big.NewInt(1)) != 0 {
			b.WriteString(f.Multiplier.RatString())
		}
	} else {
		fmt.Fprintf(&b, "(%s)", f.Multiplier.RatString())
	}
	for i, d := range f.Dims {
		if d.Sign() == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		switch {
		case d.IsInt() && d.Num().Cmp(big.NewInt(1)) == 0:
			b.WriteString(dimSymbols[i])
		case d.IsInt():
			fmt.Fprintf(&b, "%s**%s", dimSymbols[i], d.RatString())
		default:
			fmt.Fprintf(&b, "%s**(%s)", dimSymbols[i], d.RatString())
		}
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}
