package transcendental

import (
	"testing"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

func mustD(t *testing.T, s string) bigdecimal.Decimal {
	t.Helper()
	d, err := bigdecimal.FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return d
}

func TestPiFirstDigits(t *testing.T) {
	p := Pi(20)
	s := p.String()
	want := "3.1415926535897932384"
	if len(s) > len(want) {
		s = s[:len(want)]
	}
	if s != want {
		t.Fatalf("Pi(20): got %s want prefix %s", p.String(), want)
	}
}

func TestLnTen(t *testing.T) {
	ln, err := Ln(mustD(t, "10"), 20)
	if err != nil {
		t.Fatal(err)
	}
	want := "2.3025850929940456840"
	s := ln.String()
	if len(s) > len(want) {
		s = s[:len(want)]
	}
	if s != want {
		t.Fatalf("Ln(10): got %s want prefix %s", ln.String(), want)
	}
}

func TestLnInvalidDomain(t *testing.T) {
	if _, err := Ln(mustD(t, "-1"), 10); err != bigdecimal.ErrInvalidDomain {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestExpZero(t *testing.T) {
	r := Exp(bigdecimal.Zero(), 10)
	if r.String() != "1" {
		t.Fatalf("Exp(0): got %s", r.String())
	}
}

func TestExpLnRoundTrip(t *testing.T) {
	d := mustD(t, "2")
	ln, err := Ln(d, 25)
	if err != nil {
		t.Fatal(err)
	}
	back := Exp(ln, 20)
	diff := bigdecimal.Sub(back, d).Abs()
	tol := mustD(t, "0.0000000000000001")
	if diff.Cmp(tol) > 0 {
		t.Fatalf("exp(ln(2)) = %s, want close to 2 (diff %s)", back.String(), diff.String())
	}
}

func TestArctanOne(t *testing.T) {
	a := Arctan(bigdecimal.One(), 20)
	quarterPi, _ := bigdecimal.Divide(Pi(25), bigdecimal.FromInt64(4), 20, bigdecimal.HalfEven)
	diff := bigdecimal.Sub(a, quarterPi).Abs()
	tol := mustD(t, "0.000000000000000001")
	if diff.Cmp(tol) > 0 {
		t.Fatalf("arctan(1) = %s, want close to pi/4 = %s", a.String(), quarterPi.String())
	}
}

func TestSqrtCrossCheck(t *testing.T) {
	d := mustD(t, "2")
	a, err := Sqrt(d, 15)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bigdecimal.Sqrt(d, 15, bigdecimal.HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	diff := bigdecimal.Sub(a, b).Abs()
	tol := mustD(t, "0.00000000001")
	if diff.Cmp(tol) > 0 {
		t.Fatalf("Newton sqrt %s disagrees with bi2 sqrt %s beyond tolerance", a.String(), b.String())
	}
}
