// Package bi2 implements signed arbitrary-precision integers in base
// 2^32. db47h/decimal never leaves base 10^9/10^19 internally, so this
// package has no direct teacher counterpart; it is grounded on the
// general word-vector shape of buint and dec.go, generalized to a
// power-of-two base, and on the base-2^32 nat type in
// other_examples' bford-go math/big port for the division and sqrt
// structure. bi2 exists to host the two operations the spec requires to
// run faster in binary than in base 10^9: divide-and-conquer decimal
// string conversion and precision-doubling integer square root.
package bi2

import "math/bits"

// Word is a single base-2^32 digit.
type Word = uint32

// Int is a signed arbitrary-precision integer stored little-endian in
// base 2^32. The zero value represents 0.
type Int struct {
	abs []Word
	neg bool
}

// Zero returns 0.
func Zero() Int { return Int{} }

// One returns 1.
func One() Int { return Int{abs: []Word{1}} }

func (x Int) norm() Int {
	a := x.abs
	i := len(a)
	for i > 0 && a[i-1] == 0 {
		i--
	}
	a = a[:i]
	if len(a) == 0 {
		return Int{}
	}
	return Int{abs: a, neg: x.neg}
}

// FromUint64 converts a machine uint64.
func FromUint64(x uint64) Int {
	if x == 0 {
		return Int{}
	}
	if hi := uint32(x >> 32); hi != 0 {
		return Int{abs: []Word{uint32(x), hi}}
	}
	return Int{abs: []Word{uint32(x)}}
}

// FromInt64 converts a machine int64.
func FromInt64(x int64) Int {
	if x < 0 {
		z := FromUint64(uint64(-x))
		z.neg = true
		return z
	}
	return FromUint64(uint64(x))
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return x
	}
	return Int{abs: x.abs, neg: !x.neg}
}

// Abs returns |x|.
func (x Int) Abs() Int { return Int{abs: x.abs} }

// BitLen returns the number of bits required to represent |x|, 0 for x==0.
func (x Int) BitLen() int {
	if x.IsZero() {
		return 0
	}
	top := x.abs[len(x.abs)-1]
	return (len(x.abs)-1)*32 + bits.Len32(top)
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to,
// or greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return -1
	case !x.neg && y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return 1
	case !x.neg:
		return cmpAbs(x.abs, y.abs)
	default:
		return cmpAbs(y.abs, x.abs)
	}
}

func cmpAbs(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
