// Package fixed provides a fixed-width 128-bit decimal type, an
// optimization tier over bigdecimal.Decimal for values that are known to
// fit in 128 bits of coefficient and a scale of 0..28 (the same envelope
// as decimal128 in the SQL/arrow world). spec.md §9 suggests exactly this
// split: "a clean implementation can start with BI10+BigDecimal and treat
// the 128-bit variant as an optimization tier if desired".
//
// The two's-complement 128-bit integer representation and the
// power-of-ten scale table are adapted from apache/arrow's
// decimal128.Num; the scale/rounding semantics (HalfEven default, a
// caller-chosen RoundingMode, exact fixed-scale values) are adapted from
// db47h/decimal's rounding vocabulary by way of bigdecimal.RoundingMode.
package fixed

import (
	"errors"
	"math/bits"

	"github.com/dbfour-decimal/bigdecimal/bi10"
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// MaxScale is the largest scale fixed.Decimal supports without risking
// overflow of the underlying 128-bit coefficient for typical magnitudes,
// matching decimal128's 38-digit precision envelope trimmed to a round 28
// (the common "money" scale ceiling used by SQL NUMERIC(38,28) columns).
const MaxScale = 28

var (
	// ErrScaleOutOfRange reports a requested scale outside [0, MaxScale].
	ErrScaleOutOfRange = errors.New("fixed: scale out of range")
	// ErrOverflow reports a value that does not fit in 128 bits.
	ErrOverflow = bigdecimal.ErrOverflowToFixedType
)

// Decimal is a signed fixed-point number equal to (hi:lo as two's
// complement int128) * 10^-scale, with 0 <= scale <= MaxScale.
type Decimal struct {
	lo    uint64
	hi    int64
	scale int32
}

// Zero returns 0 at scale 0.
func Zero() Decimal { return Decimal{} }

// sign reports -1, 0 or 1 for d's coefficient, grounded on decimal128.Num.Sign.
func (d Decimal) sign() int {
	if d.hi == 0 && d.lo == 0 {
		return 0
	}
	return int(1 | (d.hi >> 63))
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int { return d.sign() }

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int32 { return d.scale }

// negate returns -d's coefficient, grounded on decimal128.Num.Negate's
// two's-complement negation.
func negate(hi int64, lo uint64) (int64, uint64) {
	lo = ^lo + 1
	hi = ^hi
	if lo == 0 {
		hi++
	}
	return hi, lo
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	hi, lo := negate(d.hi, d.lo)
	return Decimal{hi: hi, lo: lo, scale: d.scale}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.sign() < 0 {
		return d.Neg()
	}
	return d
}

// scaleMultiplier10 returns 10^n as a 128-bit magnitude (hi,lo), for
// 0 <= n <= MaxScale; these fit comfortably since 10^28 < 2^94.
func scaleMultiplier10(n int32) (hi int64, lo uint64) {
	lo = 1
	for i := int32(0); i < n; i++ {
		var carry uint64
		carry, lo = bits.Mul64(lo, 10)
		hi = hi*10 + int64(carry)
	}
	return hi, lo
}

// mul128 multiplies the unsigned 128-bit magnitudes (ahi,alo)*(bhi,blo),
// discarding any overflow above bit 127 (the teacher's arithmetic is
// likewise "calculations wrap around and overflow is ignored" at this
// layer; Decimal's own FromDecimal/ToDecimal conversions are what detect
// overflow against bigdecimal's unbounded coefficient).
func mul128(ahi int64, alo uint64, bhi int64, blo uint64) (hi int64, lo uint64) {
	hiHi, loLo := bits.Mul64(alo, blo)
	lo = loLo
	hi = int64(hiHi) + int64(alo)*bhi + ahi*int64(blo)
	return hi, lo
}

// rescaleUp returns d's coefficient scaled to newScale (newScale >=
// d.scale), grounded on decimal128.Num.IncreaseScaleBy.
func rescaleUp(hi int64, lo uint64, by int32) (int64, uint64) {
	mhi, mlo := scaleMultiplier10(by)
	return mul128(hi, lo, mhi, mlo)
}

// FromBi10 converts a bi10.Int and a desired scale into a fixed Decimal,
// grounded on decimal128.Num.FromBigInt's bit-length overflow check.
func FromBi10(mag bi10.Int, scale int64) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, ErrScaleOutOfRange
	}
	neg := mag.Sign() < 0
	digits := mag.Abs().String()
	if digits == "0" {
		return Decimal{scale: int32(scale)}, nil
	}

	var hi int64
	var lo uint64
	for _, c := range digits {
		digit := uint64(c - '0')
		if hi > (1<<63-1)/10 {
			// hi*10 would wrap past int64 and could land on a positive value.
			return Decimal{}, ErrOverflow
		}
		nhi, nlo := rescaleUp(hi, lo, 1)
		sum := nlo + digit
		carry := uint64(0)
		if sum < nlo {
			carry = 1
		}
		lo = sum
		hi = nhi + int64(carry)
		if hi < 0 {
			// the magnitude's high word has run past bit 126: a positive
			// 128-bit two's-complement value can only use hi's sign bit
			// for the value itself, never flip it on its own.
			return Decimal{}, ErrOverflow
		}
	}
	if neg {
		hi, lo = negate(hi, lo)
	}
	return Decimal{hi: hi, lo: lo, scale: int32(scale)}, nil
}

// ToBi10 converts d back to a bi10.Int magnitude and returns its scale,
// grounded on decimal128.Num.BigInt's two's-complement-to-sign-magnitude
// conversion.
func (d Decimal) ToBi10() (bi10.Int, int64) {
	hi, lo := d.hi, d.lo
	neg := d.sign() < 0
	if neg {
		hi, lo = negate(hi, lo)
	}
	if hi == 0 && lo == 0 {
		return bi10.Zero(), int64(d.scale)
	}
	// peel decimal digits off the 128-bit magnitude by repeated div-by-10,
	// the same digit-at-a-time approach buint.ToDigits uses internally.
	uhi, ulo := uint64(hi), lo
	var digitsRev []byte
	for uhi != 0 || ulo != 0 {
		qhi, qlo, r := divmod128by10(uhi, ulo)
		digitsRev = append(digitsRev, byte('0'+r))
		uhi, ulo = qhi, qlo
	}
	buf := make([]byte, len(digitsRev))
	for i, c := range digitsRev {
		buf[len(digitsRev)-1-i] = c
	}
	mag, _ := bi10.FromString(string(buf))
	if neg {
		mag = mag.Neg()
	}
	return mag, int64(d.scale)
}

// divmod128by10 divides the unsigned 128-bit value (hi,lo) by 10, using
// math/bits.Div64 twice: once to bring the high word's remainder below
// the divisor, once to finish the division across the word boundary.
func divmod128by10(hi, lo uint64) (qhi, qlo, r uint64) {
	qhi = hi / 10
	rhi := hi % 10
	qlo, r = bits.Div64(rhi, lo, 10)
	return qhi, qlo, r
}

// ToDecimal converts d to a bigdecimal.Decimal.
func (d Decimal) ToDecimal() bigdecimal.Decimal {
	mag, scale := d.ToBi10()
	return bigdecimal.FromParts(mag, scale)
}

// FromDecimal converts a bigdecimal.Decimal to the fixed-width tier,
// rescaling to scale (rounding per mode) and failing with ErrOverflow if
// the rescaled coefficient does not fit in 128 bits.
func FromDecimal(d bigdecimal.Decimal, scale int64, mode bigdecimal.RoundingMode) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, ErrScaleOutOfRange
	}
	rounded := bigdecimal.Round(d, scale, mode)
	return FromBi10(rounded.Coeff(), rounded.Scale())
}

// String renders d in plain decimal notation.
func (d Decimal) String() string {
	return d.ToDecimal().String()
}
