package transcendental

import (
	"math"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// Sqrt returns the square root of x to prec significant digits, adapted
// directly from decimal_sqrt.go's sqrtInverse: rather than solving
// t^2 - x = 0 directly, it solves 1/t^2 - x = 0 for t via Newton's method
// (division-free once t is known) and returns x*t. The precision of the
// Newton iterate is doubled on every round, following the same
// `t.prec = t.prec*2 - 2` conservative-growth schedule as the teacher.
//
// bigdecimal.Sqrt (in the bigdecimal package) is the one the rest of this
// module calls, since it dispatches to bi2.Isqrt's binary
// precision-doubling root and so never has to seed a Newton iteration at
// all; this function is kept as an independent implementation so
// transcendental_test.go can cross-check the two algorithms against each other.
func Sqrt(x bigdecimal.Decimal, prec int64) (bigdecimal.Decimal, error) {
	if x.Sign() < 0 {
		return bigdecimal.Decimal{}, bigdecimal.ErrNegativeSqrt
	}
	if x.IsZero() {
		return bigdecimal.Zero(), nil
	}
	workPrec := prec + 15

	xf, _ := approxFloat64(x)
	if xf <= 0 {
		xf = 1
	}
	t := bigdecimal.FromInt64(1)
	seed, err := bigdecimal.FromString(trimFloat(1 / math.Sqrt(xf)))
	if err == nil {
		t = seed
	}

	half := mustParse("0.5")
	three := bigdecimal.FromInt64(3)

	for p := int64(17); p < workPrec+2; p = p*2 - 2 {
		u := bigdecimal.Mul(t, t)
		u = bigdecimal.Mul(x, u)
		v := bigdecimal.Sub(three, u)
		u = bigdecimal.Mul(t, v)
		t = bigdecimal.Mul(u, half)
		t = bigdecimal.Round(t, p, bigdecimal.HalfEven)
	}

	result := bigdecimal.Mul(x, t)
	return bigdecimal.RoundSignificant(result, prec, bigdecimal.HalfEven), nil
}

// approxFloat64 gives a fast, imprecise float64 approximation of d, used
// only to seed Newton's method (any value within a couple of decimal
// digits of the true root converges in a handful of doubling rounds).
func approxFloat64(d bigdecimal.Decimal) (float64, bool) {
	digits := d.Coeff().Abs().String()
	if len(digits) > 15 {
		digits = digits[:15]
	}
	var v float64
	for _, c := range digits {
		v = v*10 + float64(c-'0')
	}
	exp := float64(len(d.Coeff().Abs().String()) - len(digits)) - float64(d.Scale())
	return v * math.Pow(10, exp), true
}

func trimFloat(f float64) string {
	if f != f || f < 0 {
		return "1"
	}
	return floatToDecimalString(f)
}

func floatToDecimalString(f float64) string {
	// a plain, short decimal rendering is enough for a Newton seed.
	neg := f < 0
	if neg {
		f = -f
	}
	intPart := int64(f)
	frac := f - float64(intPart)
	s := itoaInt(intPart)
	if frac > 0 {
		s += "."
		for i := 0; i < 15 && frac > 0; i++ {
			frac *= 10
			digit := int64(frac)
			s += string(rune('0' + digit))
			frac -= float64(digit)
		}
	}
	if neg {
		s = "-" + s
	}
	return s
}

func itoaInt(x int64) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	s := string(buf[i:])
	if neg {
		s = "-" + s
	}
	return s
}
