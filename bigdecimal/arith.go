package bigdecimal

import "github.com/dbfour-decimal/bigdecimal/bi10"

// Add returns d+e, grounded on decimal.go's uadd: the operand with the
// smaller scale is rescaled up to match the larger before adding
// coefficients. Unlike uadd, the result's scale is the max of the two
// input scales exactly — it is never renormalized away afterward, so
// 1.50+0 still reports scale 2.
func Add(d, e Decimal) Decimal {
	scale := maxScale(d, e)
	dc := rescale(d, scale)
	ec := rescale(e, scale)
	return Decimal{coeff: bi10.Add(dc, ec), scale: scale}
}

// Sub returns d-e.
func Sub(d, e Decimal) Decimal {
	scale := maxScale(d, e)
	dc := rescale(d, scale)
	ec := rescale(e, scale)
	return Decimal{coeff: bi10.Sub(dc, ec), scale: scale}
}

func maxScale(d, e Decimal) int64 {
	if d.scale > e.scale {
		return d.scale
	}
	return e.scale
}

// Mul returns d*e. Grounded on decimal.go's umul, but the result's scale
// is exactly d.scale+e.scale and the coefficient is the exact product: no
// rounding or renormalization occurs (spec.md §4.6).
func Mul(d, e Decimal) Decimal {
	return Decimal{coeff: bi10.Mul(d.coeff, e.coeff), scale: d.scale + e.scale}
}

// Divide returns d/e rounded to prec significant digits using mode,
// grounded on decimal.go's uquo: the dividend's coefficient is scaled up
// so the truncating divmod yields the target number of coefficient
// digits of quotient, and the remainder stands in for the sticky bit that
// drives rounding. Per spec.md §4.6, prec counts significant digits of
// the quotient, not fractional digits, so the result's scale is derived
// from the quotient's own integer-digit count: a quotient with 2 integer
// digits (e.g. "33.xxx") gets prec-2 fractional digits, not prec. A
// quotient below 1 counts as having 0 integer digits and gets prec
// fractional digits, so zeros right after the point count toward prec.
func Divide(d, e Decimal, prec int64, mode RoundingMode) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if d.IsZero() {
		return Decimal{scale: prec}, nil
	}
	intDigits := quotientIntegerDigits(d, e)
	resultScale := prec - intDigits
	if resultScale < 0 {
		resultScale = 0
	}
	// we want coeff such that coeff / 10^resultScale == d/e, i.e.
	// coeff = d.coeff * 10^(resultScale + e.scale - d.scale) / e.coeff
	shift := resultScale + e.scale - d.scale
	var numerator bi10.Int
	if shift >= 0 {
		numerator = bi10.Mul(d.coeff, pow10(shift))
	} else {
		numerator = d.coeff
		// shrink the divisor side instead of using a negative power
		e2 := bi10.Mul(e.coeff, pow10(-shift))
		q, r, _ := bi10.TruncDivMod(numerator, e2)
		return finishDivide(q, r, e2, resultScale, mode, d, e), nil
	}
	q, r, _ := bi10.TruncDivMod(numerator, e.coeff)
	return finishDivide(q, r, e.coeff, resultScale, mode, d, e), nil
}

// quotientIntegerDigits returns the number of digits in floor(|d/e|), or 0
// if |d/e| < 1, by performing the exact truncating integer division once
// up front (no guard digits needed: this is floor division, not a rounded
// estimate) before the real, precision-scaled division below.
func quotientIntegerDigits(d, e Decimal) int64 {
	rawShift := e.scale - d.scale
	var q bi10.Int
	if rawShift >= 0 {
		num := bi10.Mul(d.coeff.Abs(), pow10(rawShift))
		q, _, _ = bi10.TruncDivMod(num, e.coeff.Abs())
	} else {
		den := bi10.Mul(e.coeff.Abs(), pow10(-rawShift))
		q, _, _ = bi10.TruncDivMod(d.coeff.Abs(), den)
	}
	if q.IsZero() {
		return 0
	}
	return int64(q.Digits())
}

func finishDivide(q, r, divisor bi10.Int, scale int64, mode RoundingMode, d, e Decimal) Decimal {
	neg := q.Sign() < 0 || (q.IsZero() && (d.coeff.Sign() < 0) != (e.coeff.Sign() < 0))
	if r.IsZero() {
		return Decimal{coeff: q, scale: scale}
	}
	// use the remainder, doubled against the divisor, to decide the
	// first discarded digit's relation to 5 without materializing more
	// digits: 2|r| vs |divisor| tells us whether we are past, at, or
	// short of the halfway point.
	twiceR := bi10.Mul(r.Abs(), bi10.FromInt64(2))
	cmp := twiceR.Cmp(divisor.Abs())
	firstDisc := 4
	restNZ := cmp != 0
	if cmp > 0 {
		firstDisc = 6
	} else if cmp == 0 {
		firstDisc = 5
		restNZ = false
	}
	ks := q.Abs().String()
	lastKept := int(ks[len(ks)-1] - '0')
	if applyRounding(mode, lastKept, firstDisc, restNZ, neg) {
		if neg {
			q = bi10.Sub(q, bi10.One())
		} else {
			q = bi10.Add(q, bi10.One())
		}
	}
	return Decimal{coeff: q, scale: scale}
}

// Round returns d rounded to k fractional digits using mode, grounded on
// decimal.go's round method for the carry-propagation-on-increment shape.
// If k >= d.scale, d is returned rescaled up (padded with zero digits, no
// rounding needed).
func Round(d Decimal, k int64, mode RoundingMode) Decimal {
	if k >= d.scale {
		return Decimal{coeff: rescale(d, k), scale: k}
	}
	drop := d.scale - k
	neg := d.coeff.Sign() < 0
	rounded := roundCoeff(d.coeff.Abs(), drop, mode, neg)
	if neg && !rounded.IsZero() {
		rounded = rounded.Neg()
	}
	return Decimal{coeff: rounded, scale: k}
}
