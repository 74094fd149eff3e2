package bigdecimal

import "github.com/dbfour-decimal/bigdecimal/bi10"

// RoundingMode selects how a Decimal's discarded digits influence the
// kept digits, extending decimal.go's six-member RoundingMode
// (ToNearestEven/ToNearestAway/ToZero/AwayFromZero/ToNegativeInf/
// ToPositiveInf) to the nine modes of the General Decimal Arithmetic
// specification.
type RoundingMode byte

const (
	// HalfEven rounds to the nearest neighbor; on a tie, to the neighbor
	// with an even last digit. The default mode (decimal.go's
	// ToNearestEven).
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbor; on a tie, away from zero
	// (decimal.go's ToNearestAway).
	HalfUp
	// HalfDown rounds to the nearest neighbor; on a tie, toward zero. New
	// relative to the teacher.
	HalfDown
	// Down truncates toward zero (decimal.go's ToZero).
	Down
	// Up rounds away from zero regardless of the discarded digits
	// (decimal.go's AwayFromZero).
	Up
	// Floor rounds toward negative infinity (decimal.go's ToNegativeInf).
	Floor
	// Ceiling rounds toward positive infinity (decimal.go's
	// ToPositiveInf).
	Ceiling
	// Round05Up rounds like Down, except that if the discarded digits are
	// non-zero and the last kept digit is 0 or 5, the coefficient is
	// incremented away from zero. New relative to the teacher.
	Round05Up
	// HalfOdd rounds to the nearest neighbor; on a tie, to the neighbor
	// with an odd last digit. New relative to the teacher.
	HalfOdd
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "HalfEven"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case Round05Up:
		return "Round05Up"
	case HalfOdd:
		return "HalfOdd"
	default:
		return "RoundingMode(?)"
	}
}

// RoundSignificant rounds d to prec significant digits using mode. Unlike
// Round (which takes a fractional-digit count directly), this converts
// prec into a fractional-digit count by subtracting d's integer-digit
// count first, so callers like Sqrt and Ln that only know their answer
// should carry P significant digits — not P digits after the point — get
// the same correctly-rounded-at-P-digits contract Divide provides.
func RoundSignificant(d Decimal, prec int64, mode RoundingMode) Decimal {
	if d.IsZero() {
		return Decimal{scale: prec}
	}
	frac := prec - integerDigits(d)
	if frac < 0 {
		frac = 0
	}
	return Round(d, frac, mode)
}

// applyRounding decides whether to increment the magnitude of a truncated
// coefficient, generalizing decimal.go's round switch (there driven off a
// sticky bit and the low mantissa bit; here driven off the explicit
// discarded-digit triple spec.md §4.6 defines):
//
//	lastKept:  the last digit retained (0-9)
//	firstDisc: the first discarded digit (0-9)
//	restNZ:    whether any digit after firstDisc is non-zero
//	neg:       the sign of the value being rounded
func applyRounding(mode RoundingMode, lastKept, firstDisc int, restNZ bool, neg bool) bool {
	switch mode {
	case Down:
		return false
	case Up:
		return firstDisc != 0 || restNZ
	case Floor:
		return neg && (firstDisc != 0 || restNZ)
	case Ceiling:
		return !neg && (firstDisc != 0 || restNZ)
	case HalfUp:
		return firstDisc >= 5
	case HalfDown:
		if firstDisc != 5 {
			return firstDisc > 5
		}
		return restNZ
	case HalfEven:
		if firstDisc != 5 {
			return firstDisc > 5
		}
		if restNZ {
			return true
		}
		return lastKept%2 != 0
	case HalfOdd:
		if firstDisc != 5 {
			return firstDisc > 5
		}
		if restNZ {
			return true
		}
		return lastKept%2 == 0
	case Round05Up:
		if firstDisc == 0 && !restNZ {
			return false
		}
		return lastKept == 0 || lastKept == 5
	default:
		return false
	}
}

// roundCoeff rounds the unsigned magnitude mag (with `drop` trailing
// decimal digits to discard) according to mode and the value's sign,
// returning the rounded magnitude with those digits removed.
func roundCoeff(mag bi10.Int, drop int64, mode RoundingMode, neg bool) bi10.Int {
	if drop <= 0 {
		return mag
	}
	factor := pow10(drop)
	kept, rem, _ := bi10.TruncDivMod(mag, factor)
	if rem.IsZero() {
		return kept
	}
	remStr := rem.String()
	// pad to `drop` digits so the first discarded digit is always at a
	// fixed offset.
	for int64(len(remStr)) < drop {
		remStr = "0" + remStr
	}
	firstDisc := int(remStr[0] - '0')
	restNZ := false
	for i := 1; i < len(remStr); i++ {
		if remStr[i] != '0' {
			restNZ = true
			break
		}
	}
	ks := kept.Abs().String()
	lastKept := int(ks[len(ks)-1] - '0')
	if applyRounding(mode, lastKept, firstDisc, restNZ, neg) {
		kept = bi10.Add(kept, bi10.One())
	}
	return kept
}
