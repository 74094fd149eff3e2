package transcendental

import (
	"github.com/dbfour-decimal/bigdecimal/bi10"
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// Exp returns e^d correct to prec significant digits.
//
// math/exp.go's Exp panics "not implemented" in the teacher tree (it
// describes, but never finishes, a Newton-on-Log approach). This is a
// genuine implementation, grounded on spec.md §4.7's argument-reduction
// recipe (d = q*ln2 + r, e^d = 2^q * e^r) and reusing the convergence-loop
// shape of the teacher's unused expm1T helper in math/exp.go (an
// epsilon-terminated Taylor accumulation over a factorial-growing
// denominator).
func Exp(d bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	if d.IsZero() {
		return bigdecimal.One()
	}
	workPrec := prec + 15
	ln2 := lnNearOne(bigdecimal.FromInt64(2), workPrec)

	q, r := reduceByLn2(d, ln2, workPrec)
	er := expTaylor(r, workPrec)

	result := er
	if q > 0 {
		result = bigdecimal.Mul(result, powTwo(q))
	} else if q < 0 {
		result, _ = bigdecimal.Divide(result, powTwo(-q), workPrec, bigdecimal.HalfEven)
	}
	return bigdecimal.RoundSignificant(result, prec, bigdecimal.HalfEven)
}

// reduceByLn2 finds the integer q and remainder r with d = q*ln2 + r and
// |r| <= ln2/2, so the Taylor series below only ever has to converge for
// a small argument.
func reduceByLn2(d, ln2 bigdecimal.Decimal, prec int64) (int64, bigdecimal.Decimal) {
	qDec, _ := bigdecimal.Divide(d, ln2, prec, bigdecimal.HalfEven)
	q := roundToInt64(qDec)
	r := bigdecimal.Sub(d, bigdecimal.Mul(bigdecimal.FromInt64(q), ln2))
	return q, r
}

func roundToInt64(d bigdecimal.Decimal) int64 {
	rounded := bigdecimal.Round(d, 0, bigdecimal.HalfEven)
	v, _ := rounded.Coeff().Magnitude().Uint64()
	if rounded.Sign() < 0 {
		return -int64(v)
	}
	return int64(v)
}

func powTwo(n int64) bigdecimal.Decimal {
	result := bigdecimal.One()
	two := bigdecimal.FromInt64(2)
	for i := int64(0); i < n; i++ {
		result = bigdecimal.Mul(result, two)
	}
	return result
}

// expTaylor computes e^x via the classic series x^n/n!, grounded on
// math/exp.go's expm1T loop shape (a running term updated by
// term *= x/i each step, with an epsilon cutoff), terminating once a term
// no longer moves the accumulated sum at the working precision.
func expTaylor(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	sum := bigdecimal.One()
	term := bigdecimal.One()
	epsilon := bigdecimal.FromParts(bi10.One(), prec)
	for i := int64(1); i < prec*3+20; i++ {
		term = bigdecimal.Mul(term, x)
		term, _ = bigdecimal.Divide(term, bigdecimal.FromInt64(i), prec, bigdecimal.HalfEven)
		sum = bigdecimal.Add(sum, term)
		if term.Abs().Cmp(epsilon) <= 0 {
			break
		}
	}
	return sum
}
