package bigdecimal

import "strings"

// String renders d in plain (non-scientific) form, grounded on
// decimal_toa.go's default 'g'-format String method — but since scale is
// exact and caller-controlled here rather than derived from a target
// digit count, the plain form is always exact and never a shortest
// round-tripping approximation.
func (d Decimal) String() string {
	return d.Text('f')
}

// Text renders d using the given format verb:
//
//	'f': plain fixed-point notation, e.g. "123.450"
//	'e': scientific notation with a lowercase 'e' exponent, e.g. "1.2345e+2"
//	'E': scientific notation with an uppercase 'E' exponent
//
// Design Notes' Open Question 2 resolves the plain-vs-scientific choice
// in the caller's favor (spec.md §9): Decimal never switches format based
// on the magnitude of the value itself.
func (d Decimal) Text(verb byte) string {
	switch verb {
	case 'e', 'E':
		return d.formatScientific(verb)
	default:
		return d.formatPlain()
	}
}

func (d Decimal) formatPlain() string {
	neg := d.coeff.Sign() < 0
	digits := d.coeff.Abs().String()
	if d.coeff.IsZero() {
		digits = "0"
	}
	scale := d.scale
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if scale == 0 {
		b.WriteString(digits)
		return b.String()
	}
	if int64(len(digits)) <= scale {
		digits = strings.Repeat("0", int(scale)-len(digits)+1) + digits
	}
	intLen := int64(len(digits)) - scale
	b.WriteString(digits[:intLen])
	b.WriteByte('.')
	b.WriteString(digits[intLen:])
	return b.String()
}

func (d Decimal) formatScientific(verb byte) string {
	neg := d.coeff.Sign() < 0
	digits := d.coeff.Abs().String()
	if d.coeff.IsZero() {
		digits = "0"
	}
	// value = digits * 10^-scale; normalize to a single leading digit:
	// digits[0].digits[1:] * 10^adjExp
	adjExp := int64(len(digits)) - 1 - d.scale

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	if verb == 'E' {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	if adjExp >= 0 {
		b.WriteByte('+')
	} else {
		b.WriteByte('-')
		adjExp = -adjExp
	}
	b.WriteString(itoa64(adjExp))
	return b.String()
}

func itoa64(x int64) string {
	if x == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}
