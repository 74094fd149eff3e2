package bi2

import "math/bits"

const karatsubaThreshold = 40

// Mul returns x*y, grounded on dec.go's mul/decKaratsuba generalized from
// base 10^9 to base 2^32: the carry propagation is simpler here since a
// base-2^32 word product never needs the extra range check decimal digits
// require against the non-power-of-two base.
func Mul(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	var mag []Word
	if len(x.abs) < karatsubaThreshold || len(y.abs) < karatsubaThreshold {
		mag = basicMulAbs(x.abs, y.abs)
	} else {
		mag = karatsubaMulAbs(x.abs, y.abs)
	}
	return Int{abs: normWords(mag), neg: x.neg != y.neg}.norm()
}

func basicMulAbs(x, y []Word) []Word {
	z := make([]Word, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		var c uint32
		for j, xj := range x {
			hi, lo := bits.Mul32(xj, yi)
			lo, carry := bits.Add32(lo, z[i+j], 0)
			hi += carry
			lo, carry = bits.Add32(lo, c, 0)
			hi += carry
			z[i+j] = lo
			c = hi
		}
		z[i+len(x)] += c
	}
	return normWords(z)
}

func karatsubaMulAbs(x, y []Word) []Word {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	k := n / 2

	x0, x1 := splitAbs(x, k)
	y0, y1 := splitAbs(y, k)

	z0 := basicOrKaratsuba(x0, y0)
	z2 := basicOrKaratsuba(x1, y1)

	dx, dxNeg := absDiffAbs(x1, x0)
	dy, dyNeg := absDiffAbs(y1, y0)
	cross := basicOrKaratsuba(dx, dy)
	crossNeg := dxNeg != dyNeg

	mid := addAbs(z0, z2)
	if crossNeg {
		mid = addAbs(mid, cross)
	} else {
		mid = subAbs(mid, cross)
	}

	result := addAbs(shlWordsAbs(z2, 2*k), shlWordsAbs(mid, k))
	result = addAbs(result, z0)
	return normWords(result)
}

func basicOrKaratsuba(x, y []Word) []Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < karatsubaThreshold || len(y) < karatsubaThreshold {
		return basicMulAbs(x, y)
	}
	return karatsubaMulAbs(x, y)
}

func splitAbs(x []Word, k int) (lo, hi []Word) {
	if k >= len(x) {
		return normWords(append([]Word(nil), x...)), nil
	}
	lo = normWords(append([]Word(nil), x[:k]...))
	hi = normWords(append([]Word(nil), x[k:]...))
	return
}

func absDiffAbs(a, b []Word) ([]Word, bool) {
	if cmpAbs(a, b) < 0 {
		return subAbs(b, a), true
	}
	return subAbs(a, b), false
}

func shlWordsAbs(x []Word, n int) []Word {
	if len(x) == 0 || n == 0 {
		return append([]Word(nil), x...)
	}
	z := make([]Word, len(x)+n)
	copy(z[n:], x)
	return z
}

// Sqr returns x*x.
func Sqr(x Int) Int { return Mul(x, x) }
