package units

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

// Registry holds the unit and prefix tables used to resolve identifiers.
// It is built once and never mutated afterward; a single instance may be
// shared read-only by any number of parsers.
type Registry struct {
	si       map[string]Factors
	nonSI    map[string]Factors
	prefixes map[string]*big.Rat
}

func ratInt(n int64) *big.Rat {
	return big.NewRat(n, 1)
}

func ratFrac(num, denom int64) *big.Rat {
	return big.NewRat(num, denom)
}

// ratDec converts a decimal literal such as "1.495979e11" to an exact
// rational. Registry constants are fixed, so a bad literal is a programming
// error.
func ratDec(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("units: bad rational literal " + s)
	}
	return r
}

// pow10 returns 10**n as an exact rational; n may be negative.
func pow10(n int64) *big.Rat {
	k := n
	if k < 0 {
		k = -k
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(k), nil)
	if n < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

// unit builds a registry entry from a multiplier, an affine offset, and the
// seven base-dimension exponents in m, kg, s, A, K, mol, cd order. nil
// multiplier means 1, nil offset means 0.
func unit(multiplier, offset *big.Rat, m, kg, s, A, K, mol, cd int64) Factors {
	f := One()
	if multiplier != nil {
		f.Multiplier.Set(multiplier)
	}
	if offset != nil {
		f.Offset.Set(offset)
	}
	for i, e := range [NumDims]int64{m, kg, s, A, K, mol, cd} {
		f.Dims[i].SetInt64(e)
	}
	return f
}

// NewRegistry builds the canonical SI unit, non-SI unit, and prefix tables.
func NewRegistry() *Registry {
	return &Registry{
		si: map[string]Factors{
			"m":    unit(nil, nil, 1, 0, 0, 0, 0, 0, 0),
			"kg":   unit(nil, nil, 0, 1, 0, 0, 0, 0, 0),
			"g":    unit(ratFrac(1, 1000), nil, 0, 1, 0, 0, 0, 0, 0),
			"s":    unit(nil, nil, 0, 0, 1, 0, 0, 0, 0),
			"A":    unit(nil, nil, 0, 0, 0, 1, 0, 0, 0),
			"K":    unit(nil, nil, 0, 0, 0, 0, 1, 0, 0),
			"mol":  unit(nil, nil, 0, 0, 0, 0, 0, 1, 0),
			"cd":   unit(nil, nil, 0, 0, 0, 0, 0, 0, 1),
			"rad":  unit(nil, nil, 0, 0, 0, 0, 0, 0, 0),
			"sr":   unit(nil, nil, 0, 0, 0, 0, 0, 0, 0),
			"Hz":   unit(nil, nil, 0, 0, -1, 0, 0, 0, 0),
			"N":    unit(nil, nil, 1, 1, -2, 0, 0, 0, 0),
			"Pa":   unit(nil, nil, -1, 1, -2, 0, 0, 0, 0),
			"J":    unit(nil, nil, 2, 1, -2, 0, 0, 0, 0),
			"W":    unit(nil, nil, 2, 1, -3, 0, 0, 0, 0),
			"C":    unit(nil, nil, 0, 0, 1, 1, 0, 0, 0),
			"V":    unit(nil, nil, 2, 1, -3, -1, 0, 0, 0),
			"F":    unit(nil, nil, -2, -1, 4, 2, 0, 0, 0),
			"Ω":    unit(nil, nil, 2, 1, -3, -2, 0, 0, 0),
			"S":    unit(nil, nil, -2, -1, -2, -1, 0, 0, 0),
			"Wb":   unit(nil, nil, 2, 1, -2, -1, 0, 0, 0),
			"T":    unit(nil, nil, 0, 1, -2, -1, 0, 0, 0),
			"H":    unit(nil, nil, 2, 1, -2, -2, 0, 0, 0),
			"degC": unit(nil, ratFrac(27315, 100), 0, 0, 0, 0, 1, 0, 0),
			"lm":   unit(nil, nil, 0, 0, 0, 0, 0, 0, 1),
			"lx":   unit(nil, nil, -2, 0, 0, 0, 0, 0, 1),
			"Bq":   unit(nil, nil, 0, 0, -1, 0, 0, 0, 0),
			"Gy":   unit(nil, nil, 2, 0, -2, 0, 0, 0, 0),
			"Sv":   unit(nil, nil, 2, 0, -2, 0, 0, 0, 0),
			"kat":  unit(nil, nil, 0, 0, -1, 0, 0, 1, 0),
			"L":    unit(ratFrac(1, 1000), nil, 3, 0, 0, 0, 0, 0, 0),
		},
		nonSI: map[string]Factors{
			"Å":          unit(ratFrac(1, 10000000000), nil, 1, 0, 0, 0, 0, 0, 0),
			"ua":         unit(ratDec("1.495979e11"), nil, 1, 0, 0, 0, 0, 0, 0),
			"ch":         unit(ratDec("2.011684e1"), nil, 1, 0, 0, 0, 0, 0, 0),
			"fathom":     unit(ratDec("1.828804"), nil, 1, 0, 0, 0, 0, 0, 0),
			"fermi":      unit(ratFrac(1, 1000000000000000), nil, 1, 0, 0, 0, 0, 0, 0),
			"ft":         unit(ratDec("3.048e-1"), nil, 1, 0, 0, 0, 0, 0, 0),
			"in":         unit(ratDec("2.54e-2"), nil, 1, 0, 0, 0, 0, 0, 0),
			"µ":          unit(ratFrac(1, 1000000), nil, 1, 0, 0, 0, 0, 0, 0),
			"mil":        unit(ratFrac(254, 10000000), nil, 1, 0, 0, 0, 0, 0, 0),
			"mi":         unit(ratDec("1.609344e3"), nil, 1, 0, 0, 0, 0, 0, 0),
			"yd":         unit(ratDec("9.144e-1"), nil, 1, 0, 0, 0, 0, 0, 0),
			"oz":         unit(ratDec("2.834952e-2"), nil, 0, 1, 0, 0, 0, 0, 0),
			"lb":         unit(ratDec("4.535924e-1"), nil, 0, 1, 0, 0, 0, 0, 0),
			"d":          unit(ratInt(86400), nil, 0, 0, 1, 0, 0, 0, 0),
			"h":          unit(ratInt(3600), nil, 0, 0, 1, 0, 0, 0, 0),
			"min":        unit(ratInt(60), nil, 0, 0, 1, 0, 0, 0, 0),
			"degF":       unit(ratFrac(10, 18), ratFrac(45967, 100), 0, 0, 0, 0, 1, 0, 0),
			"degR":       unit(ratFrac(10, 18), nil, 0, 0, 0, 0, 1, 0, 0),
			"BTU":        unit(ratDec("1.05587e3"), nil, 2, 1, -2, 0, 0, 0, 0),
			"cal":        unit(ratDec("4.19002"), nil, 2, 1, -2, 0, 0, 0, 0),
			"eV":         unit(ratDec("1.602176e-19"), nil, 2, 1, -2, 0, 0, 0, 0),
			"lbf":        unit(ratDec("4.448222"), nil, 1, 1, -2, 0, 0, 0, 0),
			"horsepower": unit(ratInt(746), nil, 2, 1, -3, 0, 0, 0, 0),
			"atm":        unit(ratInt(101325), nil, -1, 1, -2, 0, 0, 0, 0),
			"bar":        unit(ratInt(100000), nil, -1, 1, -2, 0, 0, 0, 0),
			"inHg":       unit(ratDec("3.386389e3"), nil, -1, 1, -2, 0, 0, 0, 0),
			"psi":        unit(ratDec("6.894757"), nil, -1, 1, -2, 0, 0, 0, 0),
			"torr":       unit(ratDec("1.333224e2"), nil, -1, 1, -2, 0, 0, 0, 0),
			"rad":        unit(ratFrac(1, 100), nil, 2, 0, -2, 0, 0, 0, 0),
			"rem":        unit(ratFrac(1, 100), nil, 2, 0, -2, 0, 0, 0, 0),
			"gal":        unit(ratDec("3.785412e-3"), nil, 3, 0, 0, 0, 0, 0, 0),
		},
		prefixes: map[string]*big.Rat{
			"Y":  pow10(24),
			"Z":  pow10(21),
			"E":  pow10(18),
			"P":  pow10(15),
			"T":  pow10(12),
			"G":  pow10(9),
			"M":  pow10(6),
			"k":  pow10(3),
			"h":  pow10(2),
			"da": pow10(1),
			"d":  pow10(-1),
			"c":  pow10(-2),
			"m":  pow10(-3),
			"µ":  pow10(-6),
			"n":  pow10(-9),
			"p":  pow10(-12),
			"f":  pow10(-15),
			"a":  pow10(-18),
			"z":  pow10(-21),
			"y":  pow10(-24),
		},
	}
}

// Lookup resolves an identifier to its factors: exact non-SI match first,
// then exact SI match, then prefix decomposition. The two-character prefix
// "da" is tried before the one-character prefixes, and only when the
// identifier is longer than two characters and the remainder is a known SI
// unit. The returned Factors shares no state with the registry.
func (r *Registry) Lookup(name string) (Factors, bool) {
	if f, ok := r.nonSI[name]; ok {
		return f.Clone(), true
	}
	if f, ok := r.si[name]; ok {
		return f.Clone(), true
	}
	if utf8.RuneCountInString(name) > 2 && strings.HasPrefix(name, "da") {
		if f, ok := r.prefixed("da", name[2:]); ok {
			return f, true
		}
	}
	if _, size := utf8.DecodeRuneInString(name); size > 0 && size < len(name) {
		if f, ok := r.prefixed(name[:size], name[size:]); ok {
			return f, true
		}
	}
	return Factors{}, false
}

// prefixed resolves prefix+suffix when the prefix has a known scale and the
// suffix is an SI unit. The scale multiplies into a copy of the unit.
func (r *Registry) prefixed(prefix, suffix string) (Factors, bool) {
	scale, ok := r.prefixes[prefix]
	if !ok {
		return Factors{}, false
	}
	base, ok := r.si[suffix]
	if !ok {
		return Factors{}, false
	}
	f := base.Clone()
	f.Multiplier.Mul(f.Multiplier, scale)
	return f, true
}
