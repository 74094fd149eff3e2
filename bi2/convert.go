package bi2

import (
	"strings"
	"sync"
)

// dcThreshold gates the divide-and-conquer base converter: below this
// decimal-digit count, a simple repeated-multiply (string to binary) or
// repeated-divide (binary to string) loop is faster than building the
// power table and recursing.
const dcThreshold = 1 << 10

// powers[k] caches 10^(2^k) as a bi2.Int, built once by repeated squaring
// and reused by every conversion call. This mirrors decimal_conv.go's pow2
// ladder (there built for base-2 exponents of a binary float mantissa;
// here for base-10 exponents of a decimal digit count) and is the
// workhorse of both FromDecimalString and ToDecimalString.
var (
	powersMu sync.Mutex
	powers   = []Int{FromInt64(10)}
)

func pow10pow2(k int) Int {
	powersMu.Lock()
	defer powersMu.Unlock()
	for len(powers) <= k {
		prev := powers[len(powers)-1]
		powers = append(powers, Mul(prev, prev))
	}
	return powers[k]
}

// FromDecimalString converts an optionally-signed decimal digit string
// into a bi2.Int using divide-and-conquer for long inputs: the string is
// split so its low part is the largest power-of-two digit count below
// half its length, each part is converted recursively, and the
// halves are combined as hi*10^len(lo)+lo using the memoized power table.
// This is the algorithm spec.md §4.4 specifies; below dcThreshold digits
// it degrades to a linear Horner-style accumulation, since the power-table
// lookups only pay for themselves once the recursion has enough depth to
// amortize them.
func FromDecimalString(s string) (Int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return Zero(), nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Int{}, ErrInvalidDigits
		}
	}
	v := fromDecimalStringDC(s)
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// ErrInvalidDigits mirrors buint.ErrInvalidDigits at the binary layer.
var ErrInvalidDigits = errDigits{}

type errDigits struct{}

func (errDigits) Error() string { return "bi2: invalid digit string" }

func fromDecimalStringDC(s string) Int {
	if len(s) <= dcThreshold {
		return fromDecimalStringLinear(s)
	}
	// round the split to a power-of-two digit count so the same cached
	// power is reused across sibling recursive calls.
	k := 0
	for (1 << (k + 1)) <= len(s)-1 {
		k++
	}
	lowLen := 1 << k
	hi := fromDecimalStringDC(s[:len(s)-lowLen])
	lo := fromDecimalStringDC(s[len(s)-lowLen:])
	scaled := Mul(hi, pow10pow2(k))
	return Add(scaled, lo)
}

func fromDecimalStringLinear(s string) Int {
	v := Zero()
	ten := FromInt64(10)
	const chunk = 9
	for i := 0; i < len(s); i += chunk {
		end := i + chunk
		if end > len(s) {
			end = len(s)
		}
		var w uint64
		n := end - i
		for _, c := range s[i:end] {
			w = w*10 + uint64(c-'0')
		}
		scale := FromInt64(1)
		for j := 0; j < n; j++ {
			scale = Mul(scale, ten)
		}
		v = Add(Mul(v, scale), FromUint64(w))
	}
	return v
}

// ToDecimalString renders x in base 10 using the same divide-and-conquer
// strategy in reverse: x is split by dividing by the largest cached
// power 10^(2^k) not exceeding x, recursed on quotient and
// remainder, and the remainder is zero-padded to exactly 2^k digits so
// concatenation is correct regardless of leading zeros in the low half.
func (x Int) ToDecimalString() string {
	if x.IsZero() {
		return "0"
	}
	mag := x.Abs()
	s := toDecimalStringDC(mag)
	if x.neg {
		return "-" + s
	}
	return s
}

func toDecimalStringDC(x Int) string {
	approxDigits := x.BitLen()/3 + 1
	if approxDigits <= dcThreshold {
		return toDecimalStringLinear(x)
	}
	k := 0
	for {
		next := pow10pow2(k + 1)
		if next.Cmp(x) > 0 {
			break
		}
		k++
	}
	divisor := pow10pow2(k)
	q, r, _ := TruncDivMod(x, divisor)
	hiStr := toDecimalStringDC(q)
	loStr := toDecimalStringDC(r)
	pad := (1 << k) - len(loStr)
	if pad > 0 {
		loStr = strings.Repeat("0", pad) + loStr
	}
	return hiStr + loStr
}

func toDecimalStringLinear(x Int) string {
	if x.IsZero() {
		return "0"
	}
	const chunk = 1_000_000_000
	divisor := FromInt64(chunk)
	var groups []uint32
	cur := x
	for !cur.IsZero() {
		q, r, _ := TruncDivMod(cur, divisor)
		rv, _ := r.Uint64()
		groups = append(groups, uint32(rv))
		cur = q
	}
	var b strings.Builder
	b.WriteString(itoa(groups[len(groups)-1]))
	for i := len(groups) - 2; i >= 0; i-- {
		s := itoa(groups[i])
		for pad := 9 - len(s); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

func itoa(x uint32) string {
	if x == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

// Uint64 returns the low 64 bits of |x| and whether it fits without loss.
func (x Int) Uint64() (uint64, bool) {
	switch len(x.abs) {
	case 0:
		return 0, true
	case 1:
		return uint64(x.abs[0]), true
	case 2:
		return uint64(x.abs[1])<<32 | uint64(x.abs[0]), true
	default:
		return ^uint64(0), false
	}
}

func (x Int) String() string { return x.ToDecimalString() }
