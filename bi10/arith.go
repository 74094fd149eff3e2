package bi10

import "github.com/dbfour-decimal/bigdecimal/buint"

// Add returns x+y. Sign handling mirrors decimal.go's uadd/usub: same-sign
// operands add magnitudes, opposite-sign operands subtract the smaller
// magnitude from the larger and take the sign of the larger.
func Add(x, y Int) Int {
	if x.neg == y.neg {
		return fromMag(buint.Add(x.mag, y.mag), x.neg)
	}
	switch x.mag.Cmp(y.mag) {
	case 0:
		return Zero()
	case 1:
		return fromMag(buint.Sub(x.mag, y.mag), x.neg)
	default:
		return fromMag(buint.Sub(y.mag, x.mag), y.neg)
	}
}

// Sub returns x-y.
func Sub(x, y Int) Int { return Add(x, y.Neg()) }

// Mul returns x*y. The result's sign is the XOR of the operand signs,
// mirroring decimal.go's umul.
func Mul(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return fromMag(buint.Mul(x.mag, y.mag), x.neg != y.neg)
}
