package bigdecimal

import (
	"github.com/dbfour-decimal/bigdecimal/bi2"
	"github.com/dbfour-decimal/bigdecimal/bi10"
)

// Sqrt returns the square root of d correct to prec significant digits,
// rounded with mode. Grounded on spec.md §4.7 step 1: d is rescaled to an
// even number of fractional digits (so its coefficient's square root is
// itself an integer scale), widened by prec+2 extra digit-pairs to leave
// room for precise rounding, converted to a bi2.Int, and its integer
// square root is taken there — binary square root on a power-doubling
// word vector is the asymptotically fast path spec.md §4.5 builds, so
// BigDecimal.Sqrt dispatches to it rather than to the teacher's
// Newton-on-reciprocal decimal_sqrt.go approach (kept, adapted, as
// transcendental.Sqrt for callers that want a pure-decimal routine).
func Sqrt(d Decimal, prec int64, mode RoundingMode) (Decimal, error) {
	if d.Sign() < 0 {
		return Decimal{}, ErrNegativeSqrt
	}
	if d.IsZero() {
		return Decimal{scale: prec}, nil
	}

	// Target: coefficient c', scale s' with s' even, such that
	// sqrt(c'/10^s') has >= prec significant digits of integer part
	// available from isqrt(c').
	extraPairs := prec + 2
	scale := d.scale
	if scale%2 != 0 {
		scale++
	}
	c := rescale(d, scale)
	widenPairs := extraPairs
	c = bi10.Mul(c, pow10(2*widenPairs))
	scale += 2 * widenPairs

	bin, err := bi10ToBi2(c)
	if err != nil {
		return Decimal{}, err
	}
	root, err := bi2.Isqrt(bin)
	if err != nil {
		return Decimal{}, ErrNegativeSqrt
	}
	coeff, err := bi2ToBi10(root)
	if err != nil {
		return Decimal{}, err
	}
	result := Decimal{coeff: coeff, scale: scale / 2}
	return RoundSignificant(result, prec, mode), nil
}

func bi10ToBi2(x bi10.Int) (bi2.Int, error) {
	v, err := bi2.FromDecimalString(x.String())
	if err != nil {
		return bi2.Int{}, ErrInvalidDomain
	}
	return v, nil
}

func bi2ToBi10(x bi2.Int) (bi10.Int, error) {
	v, err := bi10.FromString(x.ToDecimalString())
	if err != nil {
		return bi10.Int{}, ErrInvalidDomain
	}
	return v, nil
}
