// Package bi10 implements signed arbitrary-precision integers in base
// 10^9, layered directly on buint.BUInt magnitudes. It plays the role
// db47h/decimal's Decimal.neg/mant pair plays inside Decimal, but as a
// standalone integer type with no exponent or rounding mode of its own;
// bigdecimal.Decimal embeds an Int as its coefficient.
package bi10

import "github.com/dbfour-decimal/bigdecimal/buint"

// Int is a signed base-10^9 integer. The zero value represents 0.
type Int struct {
	mag buint.BUInt
	neg bool
}

// Zero returns the additive identity.
func Zero() Int { return Int{} }

// One returns the multiplicative identity.
func One() Int { return Int{mag: buint.One()} }

// FromInt64 converts a machine int64.
func FromInt64(x int64) Int {
	if x == 0 {
		return Int{}
	}
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x)
	}
	return Int{mag: buint.FromUint64(ux), neg: neg}
}

// FromString parses an optionally-signed string of decimal digits.
func FromString(s string) (Int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	mag, err := buint.FromDigits(s)
	if err != nil {
		return Int{}, err
	}
	if mag.IsZero() {
		neg = false
	}
	return Int{mag: mag, neg: neg}, nil
}

func fromMag(mag buint.BUInt, neg bool) Int {
	if mag.IsZero() {
		neg = false
	}
	return Int{mag: mag, neg: neg}
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.mag.IsZero() }

// Neg returns -x.
func (x Int) Neg() Int { return fromMag(x.mag, !x.neg) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{mag: x.mag} }

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to,
// or greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return -1
	case !x.neg && y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return 1
	case !x.neg:
		return x.mag.Cmp(y.mag)
	default:
		return y.mag.Cmp(x.mag)
	}
}

// String renders x in base 10, sign-prefixed when negative.
func (x Int) String() string {
	if x.neg {
		return "-" + x.mag.ToDigits()
	}
	return x.mag.ToDigits()
}

// Digits returns the number of decimal digits in |x| (zero counts as 1).
func (x Int) Digits() uint { return x.mag.Digits() }

// Magnitude exposes the underlying unsigned value, for packages (bi2,
// bigdecimal) that need to drive buint directly without re-deriving sign
// handling.
func (x Int) Magnitude() buint.BUInt { return x.mag }

// FromMagnitude builds a signed Int from an unsigned magnitude and sign,
// the inverse of Magnitude/Sign, for callers that computed a buint.BUInt
// directly (e.g. bigdecimal's rounding code).
func FromMagnitude(mag buint.BUInt, neg bool) Int { return fromMag(mag, neg) }
