package transcendental

import "github.com/dbfour-decimal/bigdecimal/bigdecimal"

// Power returns base^exp correct to prec significant digits. Integer
// exponents use binary exponentiation directly on Decimal multiplication
// (the same square-and-multiply shape as bi10.ModPow, without a modulus);
// non-integer exponents fall back to exp(exponent * ln(base)) per
// spec.md §4.7.
func Power(base, exp bigdecimal.Decimal, prec int64) (bigdecimal.Decimal, error) {
	if exp.IsInteger() {
		return integerPower(base, exp, prec)
	}
	if base.Sign() <= 0 {
		return bigdecimal.Decimal{}, bigdecimal.ErrInvalidDomain
	}
	ln, err := Ln(base, prec+15)
	if err != nil {
		return bigdecimal.Decimal{}, err
	}
	result := Exp(bigdecimal.Mul(exp, ln), prec)
	return result, nil
}

func integerPower(base, exp bigdecimal.Decimal, prec int64) (bigdecimal.Decimal, error) {
	neg := exp.Sign() < 0
	e := exp.Abs()
	result := bigdecimal.One()
	b := base
	two := bigdecimal.FromInt64(2)
	for !e.IsZero() {
		half, errDiv := bigdecimal.Divide(e, two, 0, bigdecimal.Down)
		if errDiv != nil {
			return bigdecimal.Decimal{}, errDiv
		}
		isOdd := !bigdecimal.Sub(e, bigdecimal.Mul(half, two)).IsZero()
		if isOdd {
			result = bigdecimal.Mul(result, b)
		}
		b = bigdecimal.Mul(b, b)
		e = half
	}
	if neg {
		one := bigdecimal.One()
		return bigdecimal.Divide(one, result, prec, bigdecimal.HalfEven)
	}
	return bigdecimal.RoundSignificant(result, prec, bigdecimal.HalfEven), nil
}
