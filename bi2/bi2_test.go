package bi2

import "testing"

func TestAddShlShr(t *testing.T) {
	x := FromUint64(1<<63 | 7)
	y := FromUint64(5)
	if s := Add(x, y); s.Cmp(FromUint64(1<<63+12)) != 0 {
		t.Fatalf("Add: got %s", s)
	}
	z := Shl(One(), 100)
	back := Shr(z, 100)
	if back.Cmp(One()) != 0 {
		t.Fatalf("Shl/Shr roundtrip: got %s", back)
	}
}

func TestMulAgreesBasicKaratsuba(t *testing.T) {
	x, _ := FromDecimalString("314159265358979323846264338327950288419716939937510582097494459")
	y, _ := FromDecimalString("271828182845904523536028747135266249775724709369995957496696762")
	want := basicMulAbs(x.abs, y.abs)
	got := karatsubaMulAbs(x.abs, y.abs)
	if cmpAbs(got, want) != 0 {
		t.Fatalf("karatsuba disagrees with schoolbook")
	}
}

func TestTruncDivMod(t *testing.T) {
	x := FromInt64(-100)
	y := FromInt64(7)
	q, r, err := TruncDivMod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if q.Cmp(FromInt64(-14)) != 0 || r.Cmp(FromInt64(-2)) != 0 {
		t.Fatalf("TruncDivMod(-100,7): got q=%s r=%s", q, r)
	}
}

func TestDecimalStringRoundtrip(t *testing.T) {
	s := "123456789012345678901234567890123456789012345678901234567890"
	v, err := FromDecimalString(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.ToDecimalString(); got != s {
		t.Fatalf("roundtrip: got %s want %s", got, s)
	}
}

func TestIsqrtSmall(t *testing.T) {
	for _, tc := range []struct{ n, want int64 }{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {99, 9}, {100, 10}, {9999999999999999, 99999999},
	} {
		r, err := Isqrt(FromInt64(tc.n))
		if err != nil {
			t.Fatal(err)
		}
		if r.Cmp(FromInt64(tc.want)) != 0 {
			t.Fatalf("Isqrt(%d) = %s, want %d", tc.n, r, tc.want)
		}
	}
}

func TestIsqrtLarge(t *testing.T) {
	// 2^100 squared is 2^200; sqrt should be exactly 2^100.
	x := Shl(One(), 100)
	sq := Mul(x, x)
	r, err := Isqrt(sq)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(x) != 0 {
		t.Fatalf("Isqrt(2^200) = %s, want 2^100 = %s", r, x)
	}
}

func TestIsqrtNegative(t *testing.T) {
	if _, err := Isqrt(FromInt64(-1)); err != ErrNegativeSqrt {
		t.Fatalf("expected ErrNegativeSqrt, got %v", err)
	}
}
