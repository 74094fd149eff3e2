package buint

// Low-level word-vector primitives, ported from the pure-Go arithmetic
// kernels in db47h/decimal's dec_arith.go (the add10VV_g/sub10VV_g/
// mulAdd10VWW_g family). Those kernels come in asm and pure-Go flavors
// there, dispatched by build tag; this package always uses the pure-Go
// shape since no assembly exists for the target of this module.

// addVV sets z = x+y for equal-length x, y and returns the carry.
func addVV(z, x, y BUInt) Word {
	var c Word
	for i := range z {
		s := x[i] + y[i] + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
	return c
}

// subVV sets z = x-y for equal-length x, y and returns the borrow.
func subVV(z, x, y BUInt) Word {
	var b Word
	for i := range z {
		d := x[i] - y[i] - b
		if x[i] < y[i]+b {
			d += _B
			b = 1
		} else {
			b = 0
		}
		z[i] = d
	}
	return b
}

// addVW sets z = x+w (w < _B) and returns the carry.
func addVW(z, x BUInt, w Word) Word {
	c := w
	for i := range x {
		s := x[i] + c
		if s >= _B {
			s -= _B
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
	return c
}

// subVW sets z = x-w (w < _B) and returns the borrow.
func subVW(z, x BUInt, w Word) Word {
	b := w
	for i := range x {
		d := x[i] - b
		if x[i] < b {
			d += _B
			b = 1
		} else {
			b = 0
		}
		z[i] = d
	}
	return b
}

// mulAddVWW sets z = x*y+r and returns the carry out.
func mulAddVWW(z, x BUInt, y, r Word) Word {
	c := uint64(r)
	for i := range x {
		p := uint64(x[i])*uint64(y) + c
		z[i] = Word(p % _B)
		c = p / _B
	}
	return Word(c)
}

// addMulVVW sets z += x*y (a multiply-accumulate) and returns the carry out.
func addMulVVW(z, x BUInt, y Word) Word {
	var c uint64
	for i := range x {
		p := uint64(x[i])*uint64(y) + uint64(z[i]) + c
		z[i] = Word(p % _B)
		c = p / _B
	}
	return Word(c)
}

// shlWords shifts x left by the given number of words (a multiply by
// _B^n), returning a newly allocated, normalized result.
func shlWords(x BUInt, n int) BUInt {
	if x.IsZero() || n == 0 {
		return x.Clone().norm()
	}
	z := make(BUInt, len(x)+n)
	copy(z[n:], x)
	return z.norm()
}

// shrWords shifts x right by n words (an integer divide by _B^n).
func shrWords(x BUInt, n int) BUInt {
	if n >= len(x) {
		return nil
	}
	z := make(BUInt, len(x)-n)
	copy(z, x[n:])
	return z.norm()
}

// cmp compares two normalized equal-intent slices without allocating.
func cmp(x, y BUInt) int {
	return BUInt(x).Cmp(y)
}
