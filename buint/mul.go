package buint

// karatsubaThreshold mirrors db47h/decimal's karatsubaLen gate in dec.go:
// below this word count, schoolbook multiplication outperforms the
// overhead of splitting and recombining.
const karatsubaThreshold = 40

// Mul returns x*y, dispatching to schoolbook or Karatsuba multiplication
// depending on operand size, mirroring dec.go's mul/decKaratsuba split.
func Mul(x, y BUInt) BUInt {
	x, y = x.norm(), y.norm()
	if x.IsZero() || y.IsZero() {
		return nil
	}
	if len(x) < karatsubaThreshold || len(y) < karatsubaThreshold {
		return basicMul(x, y)
	}
	return karatsubaMul(x, y)
}

// basicMul is the schoolbook O(n*m) multiply, grounded on dec.go's
// decBasicMul: for each word of y, multiply-accumulate x into z shifted
// by the word's position.
func basicMul(x, y BUInt) BUInt {
	z := make(BUInt, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		c := addMulVVW(z[i:i+len(x)], x, yi)
		z[i+len(x)] += c
	}
	return z.norm()
}

// karatsubaMul implements the standard three-multiply divide-and-conquer
// product, grounded on dec.go's decKaratsuba (itself grounded on Knuth
// TAOCP vol.2 §4.3.3). x and y are split at the midpoint of the longer
// operand: x = x1*_B^k + x0, y = y1*_B^k + y0, and
//
//	x*y = x1*y1*_B^2k + (x1*y1+x0*y0-(x1-x0)*(y1-y0))*_B^k + x0*y0
func karatsubaMul(x, y BUInt) BUInt {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	k := n / 2

	x0, x1 := splitAt(x, k)
	y0, y1 := splitAt(y, k)

	z0 := Mul(x0, y0)
	z2 := Mul(x1, y1)

	// (x1-x0)*(y1-y0), tracking the sign since both differences may be
	// negative; the product's sign is the XOR of the two.
	dx, dxNeg := absDiff(x1, x0)
	dy, dyNeg := absDiff(y1, y0)
	cross := Mul(dx, dy)
	crossNeg := dxNeg != dyNeg

	mid := Add(z0, z2)
	if crossNeg {
		mid = Add(mid, cross)
	} else {
		mid = Sub(mid, cross)
	}

	result := Add(shlWords(z2, 2*k), shlWords(mid, k))
	result = Add(result, z0)
	return result.norm()
}

func splitAt(x BUInt, k int) (lo, hi BUInt) {
	if k >= len(x) {
		return x.Clone().norm(), nil
	}
	lo = x[:k].Clone().norm()
	hi = x[k:].Clone().norm()
	return
}

// absDiff returns |a-b| and whether a < b.
func absDiff(a, b BUInt) (BUInt, bool) {
	if a.Cmp(b) < 0 {
		return Sub(b, a), true
	}
	return Sub(a, b), false
}

// Sqr returns x*x. db47h/decimal special-cases squaring (decBasicSqr /
// decKaratsubaSqr) to skip the symmetric half of the cross products; this
// port keeps the simpler uniform Mul path since buint is not on a hot
// allocation-free path the way the teacher's internal dec type is.
func Sqr(x BUInt) BUInt {
	return Mul(x, x)
}
