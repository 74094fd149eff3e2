package buint

import (
	"errors"
	"strings"
)

// ErrInvalidDigits is returned by FromDigits when the input contains a
// character outside '0'-'9'.
var ErrInvalidDigits = errors.New("buint: invalid digit string")

// FromDigits parses a (possibly empty) string of ASCII decimal digits,
// most-significant digit first, grounded on dec_conv.go's digit-grouping
// scan: digits are consumed _W at a time from the right so each group
// maps directly onto one base-_B word.
func FromDigits(s string) (BUInt, error) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return nil, nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, ErrInvalidDigits
		}
	}
	n := (len(s) + _W - 1) / _W
	z := make(BUInt, n)
	end := len(s)
	for i := 0; i < n; i++ {
		start := end - _W
		if start < 0 {
			start = 0
		}
		var w Word
		for _, c := range s[start:end] {
			w = w*10 + Word(c-'0')
		}
		z[i] = w
		end = start
	}
	return z.norm(), nil
}

// ToDigits renders x as a most-significant-digit-first decimal string
// with no leading zeros (the empty value renders as "0"), grounded on
// decimal_toa.go's digit-group emission.
func (x BUInt) ToDigits() string {
	x = x.norm()
	if x.IsZero() {
		return "0"
	}
	var b strings.Builder
	top := x[len(x)-1]
	b.WriteString(itoa(uint32(top)))
	for i := len(x) - 2; i >= 0; i-- {
		s := itoa(uint32(x[i]))
		for pad := _W - len(s); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

func itoa(x uint32) string {
	if x == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

func (x BUInt) String() string { return x.ToDigits() }
