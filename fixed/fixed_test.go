package fixed

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

func TestRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123.45", "-99999.0001", "1000000000000"}
	for _, s := range cases {
		d := mustD(t, s)
		f, err := FromDecimal(d, d.Scale(), bigdecimal.HalfEven)
		if err != nil {
			t.Fatalf("FromDecimal(%s): %v", s, err)
		}
		got := f.ToDecimal()
		if bigdecimal.Sub(got, d).Sign() != 0 {
			t.Fatalf("round trip %s: got %s", s, got.String())
		}
	}
}

func TestNegAbs(t *testing.T) {
	d := mustD(t, "42.5")
	f, err := FromDecimal(d, 1, bigdecimal.HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	neg := f.Neg()
	if neg.Sign() != -1 {
		t.Fatalf("Neg sign: got %d", neg.Sign())
	}
	if neg.Abs().String() != f.String() {
		t.Fatalf("Abs: got %s want %s", neg.Abs().String(), f.String())
	}
}

func TestScaleOutOfRange(t *testing.T) {
	d := mustD(t, "1")
	if _, err := FromDecimal(d, MaxScale+1, bigdecimal.HalfEven); err != ErrScaleOutOfRange {
		t.Fatalf("expected ErrScaleOutOfRange, got %v", err)
	}
}
