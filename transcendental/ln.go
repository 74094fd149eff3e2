package transcendental

import (
	"github.com/dbfour-decimal/bigdecimal/bi10"
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

var _ln10 bigdecimal.Decimal
var ln10Prec int64

// Ln returns the natural logarithm of d correct to prec significant
// digits, grounded on spec.md §4.7's reduction: write d = m * 10^k with m
// in [1, 10), compute ln(m) via repeated square-rooting (each sqrt halves
// the distance of the argument from 1, so a handful of rounds make the
// remaining Taylor series converge in very few terms) and recombine as
// ln(d) = ln(m) + k*ln(10).
func Ln(d bigdecimal.Decimal, prec int64) (bigdecimal.Decimal, error) {
	if d.Sign() <= 0 {
		return bigdecimal.Decimal{}, bigdecimal.ErrInvalidDomain
	}
	workPrec := prec + 15

	m, k := extractDecade(d)
	lnM := lnNearOne(m, workPrec)

	ln10 := ln10At(workPrec)
	total := bigdecimal.Add(lnM, bigdecimal.Mul(bigdecimal.FromInt64(k), ln10))
	return bigdecimal.RoundSignificant(total, prec, bigdecimal.HalfEven), nil
}

// ln10At memoizes ln(10), following the same non-mutex-guarded caching
// pattern as Pi (and math/pi.go's _pi before it): growing precision
// recomputes the cache, callers at lower precision reuse it.
func ln10At(prec int64) bigdecimal.Decimal {
	if ln10Prec < prec {
		_ln10 = lnNearOne(bigdecimal.FromInt64(10), prec)
		ln10Prec = prec
	}
	return _ln10
}

// extractDecade rewrites d as m*10^k with m in [1, 10).
func extractDecade(d bigdecimal.Decimal) (bigdecimal.Decimal, int64) {
	digits := d.Coeff().Abs().Digits()
	k := int64(digits) - 1 - d.Scale()
	quotient, _ := bigdecimal.Divide(d, pow10Dec(k), int64(digits)+20, bigdecimal.HalfEven)
	return quotient, k
}

func pow10Dec(k int64) bigdecimal.Decimal {
	if k >= 0 {
		s := "1"
		for i := int64(0); i < k; i++ {
			s += "0"
		}
		d, _ := bigdecimal.FromString(s)
		return d
	}
	s := "0."
	for i := int64(0); i < -k-1; i++ {
		s += "0"
	}
	s += "1"
	d, _ := bigdecimal.FromString(s)
	return d
}

// lnNearOne computes ln(y) for any positive y by repeated square-rooting
// until the argument is close enough to 1 for the atanh-based series
//
//	ln(y) = 2*(z + z^3/3 + z^5/5 + ...),  z = (y-1)/(y+1)
//
// to converge in a bounded number of terms for the requested precision,
// then undoes the square-roots by doubling the result n times. This
// series converges roughly twice as fast per term as the plain
// ln(1+x) = x - x^2/2 + x^3/3 - ... Taylor series for the same argument
// size, which is why it is preferred here and in most arbitrary-precision
// ln implementations.
func lnNearOne(y bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	workPrec := prec + 15
	n := 0
	one := bigdecimal.One()
	// reduce until y is within a fixed band of 1 (0.9 < y < 1.1 is ample
	// for the series below to converge in well under workPrec/2 terms).
	lo := mustParse("0.9")
	hi := mustParse("1.1")
	for y.Cmp(lo) < 0 || y.Cmp(hi) > 0 {
		y, _ = bigdecimal.Sqrt(y, workPrec, bigdecimal.HalfEven)
		n++
	}

	z, _ := bigdecimal.Divide(bigdecimal.Sub(y, one), bigdecimal.Add(y, one), workPrec, bigdecimal.HalfEven)
	zz := bigdecimal.Mul(z, z)

	sum := z
	term := z
	epsilon := bigdecimal.FromParts(bi10.One(), workPrec)
	for i := int64(1); i < workPrec*2+10; i++ {
		term = bigdecimal.Mul(term, zz)
		denom := bigdecimal.FromInt64(2*i + 1)
		add, _ := bigdecimal.Divide(term, denom, workPrec, bigdecimal.HalfEven)
		sum = bigdecimal.Add(sum, add)
		if add.Abs().Cmp(epsilon) <= 0 {
			break
		}
	}
	result := bigdecimal.Mul(bigdecimal.FromInt64(2), sum)
	for i := 0; i < n; i++ {
		result = bigdecimal.Mul(result, bigdecimal.FromInt64(2))
	}
	return bigdecimal.RoundSignificant(result, prec, bigdecimal.HalfEven)
}
