package buint

// Add returns x+y.
func Add(x, y BUInt) BUInt {
	x, y = x.norm(), y.norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(BUInt, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return z.norm()
}

// Sub returns x-y. It panics if y > x; callers that need signed results
// should compare first (see bi10, which never calls Sub on an
// out-of-order pair).
func Sub(x, y BUInt) BUInt {
	x, y = x.norm(), y.norm()
	if x.Cmp(y) < 0 {
		panic("buint: Sub underflow")
	}
	z := make(BUInt, len(x))
	b := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		b = subVW(z[len(y):], x[len(y):], b)
	}
	if b != 0 {
		panic("buint: Sub underflow")
	}
	return z.norm()
}

// AddWord returns x+w for a single-word w (0 <= w < _B).
func AddWord(x BUInt, w Word) BUInt {
	x = x.norm()
	z := make(BUInt, len(x)+1)
	c := addVW(z[:len(x)], x, w)
	z[len(x)] = c
	return z.norm()
}
