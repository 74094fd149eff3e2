package bigdecimal

import "testing"

func mustFrom(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return d
}

func TestParseFormatRoundtrip(t *testing.T) {
	for _, s := range []string{"0", "1.50", "-3.14159", "123", "0.0001"} {
		d := mustFrom(t, s)
		if got := d.String(); got != s {
			t.Fatalf("roundtrip %q: got %q", s, got)
		}
	}
}

func TestAddPreservesScale(t *testing.T) {
	d := mustFrom(t, "1.50")
	e := mustFrom(t, "0")
	sum := Add(d, e)
	if sum.Scale() != 2 {
		t.Fatalf("Add scale: got %d, want 2", sum.Scale())
	}
	if sum.String() != "1.50" {
		t.Fatalf("Add: got %s", sum.String())
	}
}

func TestMulExactScale(t *testing.T) {
	d := mustFrom(t, "1.5")
	e := mustFrom(t, "2.25")
	p := Mul(d, e)
	if p.Scale() != 3 {
		t.Fatalf("Mul scale: got %d, want 3", p.Scale())
	}
	if p.String() != "3.375" {
		t.Fatalf("Mul: got %s", p.String())
	}
}

func TestDivideHalfEven(t *testing.T) {
	d := mustFrom(t, "1")
	e := mustFrom(t, "3")
	q, err := Divide(d, e, 5, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "0.33333" {
		t.Fatalf("1/3 to 5 digits: got %s", q.String())
	}
}

func TestDivideByZero(t *testing.T) {
	d := mustFrom(t, "1")
	e := mustFrom(t, "0")
	if _, err := Divide(d, e, 5, HalfEven); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestRoundHalfEven(t *testing.T) {
	cases := []struct {
		in    string
		scale int64
		want  string
	}{
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"2.45", 1, "2.4"},
		{"2.55", 1, "2.6"},
	}
	for _, c := range cases {
		d := mustFrom(t, c.in)
		r := Round(d, c.scale, HalfEven)
		if r.String() != c.want {
			t.Fatalf("Round(%s, HalfEven): got %s want %s", c.in, r.String(), c.want)
		}
	}
}

func TestSqrtTwo(t *testing.T) {
	d := mustFrom(t, "2")
	r, err := Sqrt(d, 20, HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	want := "1.4142135623730950488"
	if r.String() != want {
		t.Fatalf("Sqrt(2) to 20 digits: got %s want %s", r.String(), want)
	}
}

func TestSqrtNegative(t *testing.T) {
	d := mustFrom(t, "-1")
	if _, err := Sqrt(d, 10, HalfEven); err != ErrNegativeSqrt {
		t.Fatalf("expected ErrNegativeSqrt, got %v", err)
	}
}
