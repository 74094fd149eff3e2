package transcendental

import (
	"github.com/dbfour-decimal/bigdecimal/bi10"
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// Sin and Cos have no db47h/decimal counterpart at all; both are new
// code, grounded on the precision-doubling/Taylor-with-guard-digits
// style shared by every function in the teacher's math package (extra
// working digits, an epsilon-terminated accumulation loop) rather than on
// any specific teacher file.

// Sin returns sin(x) correct to prec significant digits.
func Sin(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	workPrec := prec + 15
	r := reduceAngle(x, workPrec)
	return bigdecimal.RoundSignificant(sinTaylor(r, workPrec), prec, bigdecimal.HalfEven)
}

// Cos returns cos(x) correct to prec significant digits.
func Cos(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	workPrec := prec + 15
	r := reduceAngle(x, workPrec)
	return bigdecimal.RoundSignificant(cosTaylor(r, workPrec), prec, bigdecimal.HalfEven)
}

// Tan returns sin(x)/cos(x) correct to prec significant digits, or
// ErrInvalidDomain if cos(x) rounds to zero at the working precision.
func Tan(x bigdecimal.Decimal, prec int64) (bigdecimal.Decimal, error) {
	workPrec := prec + 15
	r := reduceAngle(x, workPrec)
	s := sinTaylor(r, workPrec)
	c := cosTaylor(r, workPrec)
	if c.IsZero() {
		return bigdecimal.Decimal{}, bigdecimal.ErrInvalidDomain
	}
	q, err := bigdecimal.Divide(s, c, prec, bigdecimal.HalfEven)
	if err != nil {
		return bigdecimal.Decimal{}, bigdecimal.ErrInvalidDomain
	}
	return q, nil
}

// reduceAngle reduces x modulo 2*pi into (-pi, pi], so the Taylor series
// below always converges quickly regardless of the input magnitude.
func reduceAngle(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	twoPi := bigdecimal.Mul(bigdecimal.FromInt64(2), Pi(prec))
	q, _ := bigdecimal.Divide(x, twoPi, 0, bigdecimal.HalfEven)
	qInt := bigdecimal.Round(q, 0, bigdecimal.HalfEven)
	r := bigdecimal.Sub(x, bigdecimal.Mul(qInt, twoPi))
	return r
}

func sinTaylor(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	sum := x
	term := x
	xx := bigdecimal.Mul(x, x)
	epsilon := bigdecimal.FromParts(bi10.One(), prec)
	for i := int64(1); i < prec*3+20; i++ {
		term = bigdecimal.Mul(term, xx).Neg()
		denom := bigdecimal.FromInt64((2*i + 1) * (2 * i))
		term, _ = bigdecimal.Divide(term, denom, prec, bigdecimal.HalfEven)
		sum = bigdecimal.Add(sum, term)
		if term.Abs().Cmp(epsilon) <= 0 {
			break
		}
	}
	return sum
}

func cosTaylor(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	sum := bigdecimal.One()
	term := bigdecimal.One()
	xx := bigdecimal.Mul(x, x)
	epsilon := bigdecimal.FromParts(bi10.One(), prec)
	for i := int64(1); i < prec*3+20; i++ {
		term = bigdecimal.Mul(term, xx).Neg()
		denom := bigdecimal.FromInt64((2*i - 1) * (2 * i))
		term, _ = bigdecimal.Divide(term, denom, prec, bigdecimal.HalfEven)
		sum = bigdecimal.Add(sum, term)
		if term.Abs().Cmp(epsilon) <= 0 {
			break
		}
	}
	return sum
}

// Arctan returns arctan(x) correct to prec significant digits, via
// Euler's series
//
//	arctan(x) = y/(1+y^2) * sum_{n=0}^inf  (2n)!!/(2n+1)!! * (y^2/(1+y^2))^n
//
// which converges for every real y (unlike the plain Taylor series, which
// only converges for |y|<=1), grounded on spec.md §4.7's explicit mention
// of Euler's series as the arctan method of choice. |x|>1 is first
// reduced via arctan(x) = pi/2 - arctan(1/x) (sign-adjusted for negative
// x) purely to keep the series argument small and convergence fast; the
// series itself does not require that reduction to converge.
func Arctan(x bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	workPrec := prec + 15
	if x.IsZero() {
		return bigdecimal.Zero()
	}
	neg := x.Sign() < 0
	ax := x.Abs()
	one := bigdecimal.One()

	var result bigdecimal.Decimal
	if ax.Cmp(one) > 0 {
		inv, _ := bigdecimal.Divide(one, ax, workPrec, bigdecimal.HalfEven)
		half := eulerArctanSeries(inv, workPrec)
		halfPi, _ := bigdecimal.Divide(Pi(workPrec), bigdecimal.FromInt64(2), workPrec, bigdecimal.HalfEven)
		result = bigdecimal.Sub(halfPi, half)
	} else {
		result = eulerArctanSeries(ax, workPrec)
	}
	if neg {
		result = result.Neg()
	}
	return bigdecimal.RoundSignificant(result, prec, bigdecimal.HalfEven)
}

func eulerArctanSeries(y bigdecimal.Decimal, prec int64) bigdecimal.Decimal {
	one := bigdecimal.One()
	yy := bigdecimal.Mul(y, y)
	onePlusYY := bigdecimal.Add(one, yy)
	ratio, _ := bigdecimal.Divide(yy, onePlusYY, prec, bigdecimal.HalfEven)

	sum := one
	term := one
	epsilon := bigdecimal.FromParts(bi10.One(), prec)
	for n := int64(1); n < prec*3+20; n++ {
		num := bigdecimal.FromInt64(2 * n)
		den := bigdecimal.FromInt64(2*n + 1)
		factor, _ := bigdecimal.Divide(num, den, prec, bigdecimal.HalfEven)
		term = bigdecimal.Mul(term, bigdecimal.Mul(factor, ratio))
		sum = bigdecimal.Add(sum, term)
		if term.Abs().Cmp(epsilon) <= 0 {
			break
		}
	}

	prefix, _ := bigdecimal.Divide(y, onePlusYY, prec, bigdecimal.HalfEven)
	return bigdecimal.Mul(prefix, sum)
}
