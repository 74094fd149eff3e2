package bigdecimal

import (
	"strings"

	"github.com/dbfour-decimal/bigdecimal/bi10"
)

// FromString parses a decimal literal of the form
//
//	[sign] digits [. digits] [(e|E) [sign] digits]
//
// with optional '_', ' ' and ',' digit-group separators, grounded on
// decimal_conv.go's scan (there scanning a binary-float mantissa and
// exponent; here scanning a decimal coefficient, fractional part and
// decimal exponent per spec.md §4.8's grammar).
func FromString(s string) (Decimal, error) {
	orig := s
	if s == "" {
		return Decimal{}, ErrInvalidString
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	s = strings.NewReplacer("_", "", " ", "", ",", "").Replace(s)

	mantissa := s
	exp := int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		expPart := s[i+1:]
		e, err := parseExponent(expPart)
		if err != nil {
			return Decimal{}, ErrInvalidString
		}
		exp = e
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, ErrInvalidString
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Decimal{}, ErrInvalidString
	}

	digits := intPart + fracPart
	scale := int64(len(fracPart)) - exp
	coeff, err := bi10.FromString(digits)
	if err != nil {
		return Decimal{}, ErrInvalidString
	}

	if scale < 0 {
		coeff = bi10.Mul(coeff, pow10(-scale))
		scale = 0
	}
	if neg {
		coeff = coeff.Neg()
	}
	if coeff.IsZero() && orig != "" {
		coeff = bi10.Zero()
	}
	return Decimal{coeff: coeff, scale: scale}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parseExponent(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidString
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if !allDigits(s) || s == "" {
		return 0, ErrInvalidString
	}
	var v int64
	for _, c := range s {
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}
