// Package transcendental implements the non-algebraic functions of
// spec.md §4.7 on top of bigdecimal.Decimal: Pi, Ln, Exp, Sqrt, the
// trigonometric family and Power. None of these have a direct
// decimal.go counterpart for every function — db47h/decimal's math
// package is itself incomplete (its Exp panics "not implemented") — so
// each function below names what it is grounded on individually.
package transcendental

import (
	"github.com/dbfour-decimal/bigdecimal/bi10"
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// _pi caches the highest-precision value of π computed so far, mirroring
// math/pi.go's _pi package variable. Access is not mutex-guarded — Pi and
// every function below that calls it are therefore not safe to call
// concurrently without external synchronization, exactly as math/pi.go's
// doc comment on Pi warns for db47h/decimal.
var _pi = computePi(defaultPrec)

const defaultPrec = 50

// Pi returns π correct to at least prec significant digits.
func Pi(prec int64) bigdecimal.Decimal {
	if prec <= 0 {
		prec = defaultPrec
	}
	if piPrec < prec {
		_pi = computePi(prec)
		piPrec = prec
	}
	return _pi
}

var piPrec int64 = defaultPrec

// computePi computes π via the Gauss-Legendre (Brent-Salamin) iteration,
// ported from math/pi.go's computePi. The teacher's version shuffles
// temporaries aggressively to avoid decimal.Decimal's internal
// allocations; bigdecimal.Decimal is immutable-by-value, so this port
// reads as the straightforward textbook recurrence instead.
func computePi(prec int64) bigdecimal.Decimal {
	pp := prec + 10
	half := mustParse("0.5")
	quarter := mustParse("0.25")
	two := bigdecimal.FromInt64(2)
	four := bigdecimal.FromInt64(4)
	one := bigdecimal.One()

	a := one
	u, _ := bigdecimal.Sqrt(two, pp, bigdecimal.HalfEven)
	b, _ := bigdecimal.Divide(one, u, pp, bigdecimal.HalfEven)
	t := quarter
	p := one

	epsilon := epsilonAt(pp)

	for i := 0; i < 4*int(pp)+16; i++ {
		an := bigdecimal.Mul(bigdecimal.Add(a, b), half)
		bn, _ := bigdecimal.Sqrt(bigdecimal.Mul(a, b), pp, bigdecimal.HalfEven)
		diff := bigdecimal.Sub(a, an)
		t = bigdecimal.Sub(t, bigdecimal.Mul(p, bigdecimal.Mul(diff, diff)))
		a, b = an, bn
		p = bigdecimal.Mul(p, two)

		if bigdecimal.Sub(a, b).Abs().Cmp(epsilon) <= 0 {
			break
		}
	}

	num := bigdecimal.Mul(bigdecimal.Add(a, b), bigdecimal.Add(a, b))
	den := bigdecimal.Mul(four, t)
	result, _ := bigdecimal.Divide(num, den, prec, bigdecimal.HalfEven)
	return result
}

// epsilonAt returns 10^-prec, the convergence threshold used by the
// Gauss-Legendre loop.
func epsilonAt(prec int64) bigdecimal.Decimal {
	return bigdecimal.FromParts(bi10.One(), prec)
}

func mustParse(s string) bigdecimal.Decimal {
	d, err := bigdecimal.FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
