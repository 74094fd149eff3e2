package bi2

import "github.com/dbfour-decimal/bigdecimal/buint"

// ErrDivisionByZero mirrors buint.ErrDivisionByZero at the binary layer.
var ErrDivisionByZero = buint.ErrDivisionByZero

const bzThreshold = 20

// TruncDivMod returns the quotient and remainder of x/y rounded toward
// zero: x = q*y + r, sign(r) == sign(x) (or r == 0).
func TruncDivMod(x, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	uq, ur := divAbs(x.abs, y.abs)
	q = Int{abs: uq, neg: x.neg != y.neg}.norm()
	r = Int{abs: ur, neg: x.neg}.norm()
	return q, r, nil
}

// divAbs divides two unsigned magnitudes, dispatching to a base case or a
// recursive divisor-truncation scheme by divisor size, as buint.DivMod
// does (see buint/div.go for the recursive scheme). Unlike buint, the base
// case finds each quotient word by binary search over [0, 2^32), and the
// recursive correction loops are not capped.
func divAbs(x, y []Word) (q, r []Word) {
	if cmpAbs(x, y) < 0 {
		return nil, append([]Word(nil), x...)
	}
	if len(y) <= bzThreshold {
		return divBasicAbs(x, y)
	}
	return divRecursiveAbs(x, y)
}

func divBasicAbs(x, y []Word) (q, r []Word) {
	qw := make([]Word, len(x))
	rem := []Word(nil)
	for i := len(x) - 1; i >= 0; i-- {
		rem = pushWord(rem, x[i])
		d := searchWord(rem, y)
		qw[i] = d
		if d != 0 {
			rem = subAbs(rem, basicMulAbs([]Word{d}, y))
		}
	}
	return normWords(qw), rem
}

func pushWord(rem []Word, w Word) []Word {
	z := make([]Word, len(rem)+1)
	copy(z[1:], rem)
	z[0] = w
	return normWords(z)
}

// searchWord finds the largest d in [0, 2^32) with y*d <= rem, via binary
// search over the 32-bit digit range, in place of the Knuth qhat estimate
// that buint.divBasic uses.
func searchWord(rem, y []Word) Word {
	if cmpAbs(rem, y) < 0 {
		return 0
	}
	var lo, hi uint64 = 0, 1<<32 - 1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cmpAbs(basicMulAbs([]Word{Word(mid)}, y), rem) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Word(lo)
}

func divRecursiveAbs(x, y []Word) (q, r []Word) {
	n := len(y)
	if n <= bzThreshold {
		return divBasicAbs(x, y)
	}
	k := n / 2
	yHi := shrWordsAbs(y, k)
	xShifted := shrWordsAbs(x, k)

	qEst, _ := divRecursiveAbs(xShifted, yHi)

	qv := qEst
	prod := basicOrKaratsuba(qv, y)
	for cmpAbs(prod, x) > 0 {
		qv = subAbs(qv, []Word{1})
		prod = subAbs(prod, y)
	}
	rem := subAbs(x, prod)
	for cmpAbs(rem, y) >= 0 {
		rem = subAbs(rem, y)
		qv = addAbs(qv, []Word{1})
	}
	return normWords(qv), rem
}

func shrWordsAbs(x []Word, n int) []Word {
	if n >= len(x) {
		return nil
	}
	return normWords(append([]Word(nil), x[n:]...))
}
