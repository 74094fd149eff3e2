// Package bigdecimal implements arbitrary-precision decimal numbers as an
// exact (coefficient, scale) pair, in the tradition of java.math.BigDecimal
// and the General Decimal Arithmetic specification, rather than as a
// floating (mantissa, binary exponent) pair the way db47h/decimal's
// Decimal type works. The split is deliberate: a BigDecimal's scale is
// part of its identity (1.50 and 1.5 are equal in value but distinct in
// representation), so this package never renormalizes scale away the way
// decimal.go's dnorm trims binary exponents.
package bigdecimal

import (
	"github.com/dbfour-decimal/bigdecimal/bi10"
)

// Decimal is an arbitrary-precision decimal number equal to
//
//	coeff * 10^(-scale)
//
// with scale >= 0. The zero value is 0 with scale 0.
type Decimal struct {
	coeff bi10.Int
	scale int64
}

// Zero returns 0.
func Zero() Decimal { return Decimal{} }

// One returns 1.
func One() Decimal { return Decimal{coeff: bi10.One()} }

// FromInt64 converts a machine int64 to an integer-valued Decimal.
func FromInt64(x int64) Decimal { return Decimal{coeff: bi10.FromInt64(x)} }

// FromParts builds a Decimal directly from a coefficient and a
// non-negative scale, grounded on decimal.go's SetMantExp (the analogous
// "build from raw internal parts" constructor).
func FromParts(coeff bi10.Int, scale int64) Decimal {
	if scale < 0 {
		panic("bigdecimal: negative scale")
	}
	return Decimal{coeff: coeff, scale: scale}
}

// Coeff returns the decimal's coefficient.
func (d Decimal) Coeff() bi10.Int { return d.coeff }

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int64 { return d.scale }

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int { return d.coeff.Sign() }

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool { return d.coeff.IsZero() }

// Neg returns -d.
func (d Decimal) Neg() Decimal { return Decimal{coeff: d.coeff.Neg(), scale: d.scale} }

// Abs returns |d|.
func (d Decimal) Abs() Decimal { return Decimal{coeff: d.coeff.Abs(), scale: d.scale} }

// rescale returns d's coefficient rescaled so the result has exactly
// newScale fractional digits. newScale must be >= d.scale (rescaling to a
// smaller scale requires rounding and is handled by Round, not rescale).
func rescale(d Decimal, newScale int64) bi10.Int {
	if newScale == d.scale {
		return d.coeff
	}
	factor := pow10(newScale - d.scale)
	return bi10.Mul(d.coeff, factor)
}

func pow10(n int64) bi10.Int {
	if n < 0 {
		panic("bigdecimal: pow10 of negative exponent")
	}
	ten := bi10.FromInt64(10)
	r := bi10.One()
	for i := int64(0); i < n; i++ {
		r = bi10.Mul(r, ten)
	}
	return r
}

// Cmp returns -1, 0 or +1 depending on whether d is less than, equal to,
// or greater than e, comparing by value regardless of scale (1.50 == 1.5).
func (d Decimal) Cmp(e Decimal) int {
	scale := d.scale
	if e.scale > scale {
		scale = e.scale
	}
	dc := rescale(d, scale)
	ec := rescale(e, scale)
	return dc.Cmp(ec)
}

// Equal reports whether d and e denote the same value (1.50 and 1.5 are
// Equal but not IdenticalTo).
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// IdenticalTo reports whether d and e have the same coefficient and scale.
func (d Decimal) IdenticalTo(e Decimal) bool {
	return d.scale == e.scale && d.coeff.Cmp(e.coeff) == 0
}

// IsInteger reports whether d has value with no fractional part, i.e.
// whether rounding to scale 0 loses no information.
func (d Decimal) IsInteger() bool {
	if d.scale == 0 {
		return true
	}
	_, r := quoRem10(d.coeff, d.scale)
	return r.IsZero()
}

func quoRem10(c bi10.Int, scale int64) (bi10.Int, bi10.Int) {
	q, r, _ := bi10.TruncDivMod(c, pow10(scale))
	return q, r
}

// integerDigits returns the number of decimal digits in d's integer part
// (the digits at or left of the decimal point), or 0 if |d| < 1. This is
// the quantity spec.md §4.6's "derive s_target from the quotient's digit
// count" step needs: the number of significant digits a value carries
// before its first fractional digit.
func integerDigits(d Decimal) int64 {
	c := d.coeff.Abs()
	if c.IsZero() {
		return 0
	}
	if d.scale == 0 {
		return int64(c.Digits())
	}
	q, _ := quoRem10(c, d.scale)
	if q.IsZero() {
		return 0
	}
	return int64(q.Digits())
}
