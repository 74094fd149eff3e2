package buint

import "testing"

func mustParse(t *testing.T, s string) BUInt {
	t.Helper()
	x, err := FromDigits(s)
	if err != nil {
		t.Fatalf("FromDigits(%q): %v", s, err)
	}
	return x
}

func TestAddSub(t *testing.T) {
	x := mustParse(t, "999999999999999999999")
	y := mustParse(t, "1")
	sum := Add(x, y)
	if got := sum.ToDigits(); got != "1000000000000000000000" {
		t.Fatalf("Add: got %s", got)
	}
	back := Sub(sum, y)
	if back.Cmp(x) != 0 {
		t.Fatalf("Sub roundtrip: got %s want %s", back.ToDigits(), x.ToDigits())
	}
}

func TestMulKaratsubaAgreesWithBasic(t *testing.T) {
	x := mustParse(t, "314159265358979323846264338327950288419716939937510582097494459")
	y := mustParse(t, "271828182845904523536028747135266249775724709369995957496696762")
	want := basicMul(x.norm(), y.norm())
	got := karatsubaMul(x.norm(), y.norm())
	if got.Cmp(want) != 0 {
		t.Fatalf("karatsuba disagrees with schoolbook:\n got  %s\n want %s", got, want)
	}
}

func TestDivMod(t *testing.T) {
	x := mustParse(t, "100000000000000000000000000000000000000000001")
	y := mustParse(t, "7")
	q, r, err := DivMod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	check := Add(Mul(q, y), r)
	if check.Cmp(x) != 0 {
		t.Fatalf("q*y+r != x: got %s want %s", check, x)
	}
	if r.Cmp(y) >= 0 {
		t.Fatalf("remainder %s not reduced mod %s", r, y)
	}
}

func TestDivModByZero(t *testing.T) {
	x := mustParse(t, "1")
	if _, _, err := DivMod(x, nil); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivRecursiveAgreesWithBasic(t *testing.T) {
	// build a divisor with more words than bzThreshold to exercise divRecursive
	ones := make([]byte, (bzThreshold+5)*9)
	for i := range ones {
		ones[i] = '9'
	}
	y := mustParse(t, string(ones))
	x := Mul(y, mustParse(t, "123456789"))
	x = Add(x, mustParse(t, "42"))
	q, r := divRecursive(x, y)
	qb, rb := divBasic(x, y)
	if q.Cmp(qb) != 0 || r.Cmp(rb) != 0 {
		t.Fatalf("divRecursive disagrees with divBasic: q=%s r=%s want q=%s r=%s", q, r, qb, rb)
	}
}
