package bi2

import (
	"errors"
	"math"
	"math/bits"
)

// ErrNegativeSqrt is returned by Isqrt for a negative operand.
var ErrNegativeSqrt = errors.New("bi2: square root of negative number")

// Isqrt returns floor(sqrt(x)). It implements spec.md §4.5's
// precision-doubling ("Karatsuba square root", after CPython's
// math.isqrt, itself after Zimmermann's construction) algorithm: compute
// a small number of correct leading bits of the root as a seed, then
// double the number of correct bits on each iteration by combining a
// coarser estimate with one more digit block of x, until the full root is
// recovered. The three-phase dispatch below is the acceleration spec.md
// §4.5 mandates: operands that fit in a native word or in 128 bits skip
// the general word-vector recurrence entirely, which is where the bulk of
// real-world sqrt calls land.
//
// This has no teacher source: db47h/decimal is decimal-only and never
// implements a binary integer square root. The recurrence follows the
// *pattern* of decimal_sqrt.go's precision-doubling Newton loop
// (`for prec := z.prec+2; t.prec < prec; t.prec = t.prec*2-2`), applied to
// exact binary digits instead of a fixed decimal precision target, and the
// native-word refinement step follows the same Newton shape used by
// math/big's own nat.sqrt.
func Isqrt(x Int) (Int, error) {
	if x.neg {
		return Int{}, ErrNegativeSqrt
	}
	if x.IsZero() {
		return Zero(), nil
	}
	if v, ok := x.Uint64(); ok {
		return FromUint64(isqrtUint64(v)), nil
	}
	if len(x.abs) <= 4 {
		// fits in 128 bits: use the fast native-word phase.
		if hi, lo, ok := to128(x); ok {
			rHi, rLo := isqrt128(hi, lo)
			return fromWords64(rHi, rLo), nil
		}
	}
	return isqrtLarge(x), nil
}

// isqrtUint64 is phase 1: a native machine-word integer square root,
// seeded from the float64 approximation and corrected by single +-1 steps
// (float64 has 53 bits of mantissa, comfortably more than half of 64, so
// one or two corrections always suffice). The seed is clamped to
// 2^32-1, the largest root of a uint64, so r*r never overflows.
func isqrtUint64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(x)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r > 0 && r*r > x {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// isqrt128 is phase 2: Newton's method in native 128-bit arithmetic
// (hi:lo), seeded from the bit length of x so the seed is within a factor
// of two of the true root (guaranteeing fast convergence). math/bits'
// Mul64/Add64/Div64 stand in for the 128-bit multiply/add/divide the
// standard library has no direct type for.
func isqrt128(hi, lo uint64) (rHi, rLo uint64) {
	if hi == 0 {
		return 0, isqrtUint64(lo)
	}
	xBits := 64 + bits.Len64(hi)
	approxBits := uint((xBits + 1) / 2)
	r := uint64(1) << approxBits
	if approxBits >= 64 {
		r = ^uint64(0)
	}
	// Newton iterate r_{n+1} = (r_n + x/r_n) / 2. div128by64 saturates to
	// MaxUint64 when the candidate r is too small for the quotient to fit
	// in 64 bits, which only pushes r up faster; the seed above keeps that
	// from happening more than the first step or two.
	for i := 0; i < 64; i++ {
		q := div128by64(hi, lo, r)
		nr, carry := bits.Add64(r, q, 0)
		nr = nr>>1 | carry<<63
		if nr == r {
			break
		}
		r = nr
	}
	// final adjustment: r may be off by one in either direction after
	// convergence; nudge it to the exact floor.
	for r > 0 {
		ph, pl := bits.Mul64(r, r)
		if ph < hi || (ph == hi && pl <= lo) {
			break
		}
		r--
	}
	for {
		nh, nl := bits.Mul64(r+1, r+1)
		if nh > hi || (nh == hi && nl > lo) {
			break
		}
		r++
	}
	return 0, r
}

// div128by64 returns floor((hi:lo)/y), saturating to MaxUint64 if the true
// quotient does not fit in 64 bits.
func div128by64(hi, lo, y uint64) uint64 {
	if hi == 0 {
		return lo / y
	}
	qh := hi / y
	rh := hi % y
	if qh > 0 {
		return ^uint64(0)
	}
	q, _ := bits.Div64(rh, lo, y)
	return q
}

func to128(x Int) (hi, lo uint64, ok bool) {
	a := x.abs
	switch len(a) {
	case 0:
		return 0, 0, true
	case 1:
		return 0, uint64(a[0]), true
	case 2:
		return 0, uint64(a[1])<<32 | uint64(a[0]), true
	case 3:
		return uint64(a[2]), uint64(a[1])<<32 | uint64(a[0]), true
	case 4:
		return uint64(a[3])<<32 | uint64(a[2]), uint64(a[1])<<32 | uint64(a[0]), true
	default:
		return 0, 0, false
	}
}

func fromWords64(hi, lo uint64) Int {
	v := FromUint64(lo)
	if hi != 0 {
		v = Add(v, Shl(FromUint64(hi), 64))
	}
	return v
}

// isqrtLarge is phase 3: the general word-vector recurrence, following
// CPython's math.isqrt. c is half the bit length of x (rounded down); the
// loop builds up the correct root bit-doubling-depth by bit-doubling-depth,
// at each step combining the current approximation `a` with the next
// block of x's bits via one exact bi2 division.
func isqrtLarge(x Int) Int {
	bitLen := x.BitLen()
	c := (bitLen - 1) / 2

	// depths: c, c/2, c/4, ..., 1 (CPython's bit_length-of-c schedule),
	// visited from 1 up to c.
	var depths []int
	for d := c; d > 0; d >>= 1 {
		depths = append(depths, d)
	}

	a := One()
	d := 0
	for i := len(depths) - 1; i >= 0; i-- {
		e := d
		d = depths[i]
		shiftA := d - e - 1
		shiftX := 2*c - e - d + 1
		numerator := Shr(x, uint(shiftX))
		term, _, _ := TruncDivMod(numerator, a)
		a = Add(Shl(a, uint(shiftA)), term)
	}
	// final correction: d now equals c, so a carries all c+1 bits of the
	// root and may be at most one too large; correct for that off-by-one.
	if Mul(a, a).Cmp(x) > 0 {
		a = Sub(a, One())
	}
	return a
}
