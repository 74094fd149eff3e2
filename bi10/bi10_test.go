package bi10

import "testing"

func TestFloorVsTruncDivMod(t *testing.T) {
	x := FromInt64(-7)
	y := FromInt64(2)
	tq, tr, err := TruncDivMod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if tq.Cmp(FromInt64(-3)) != 0 || tr.Cmp(FromInt64(-1)) != 0 {
		t.Fatalf("trunc(-7/2): got q=%s r=%s", tq, tr)
	}
	fq, fr, err := FloorDivMod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if fq.Cmp(FromInt64(-4)) != 0 || fr.Cmp(FromInt64(1)) != 0 {
		t.Fatalf("floor(-7/2): got q=%s r=%s", fq, fr)
	}
}

func TestGCDLCM(t *testing.T) {
	a := FromInt64(54)
	b := FromInt64(24)
	if g := GCD(a, b); g.Cmp(FromInt64(6)) != 0 {
		t.Fatalf("GCD(54,24) = %s, want 6", g)
	}
	if l := LCM(a, b); l.Cmp(FromInt64(216)) != 0 {
		t.Fatalf("LCM(54,24) = %s, want 216", l)
	}
}

func TestModPow(t *testing.T) {
	r, err := ModPow(FromInt64(4), FromInt64(13), FromInt64(497))
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(FromInt64(445)) != 0 {
		t.Fatalf("ModPow(4,13,497) = %s, want 445", r)
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(FromInt64(3), FromInt64(11))
	if err != nil {
		t.Fatal(err)
	}
	if inv.Cmp(FromInt64(4)) != 0 {
		t.Fatalf("ModInverse(3,11) = %s, want 4", inv)
	}
}

func TestAddSubMulSign(t *testing.T) {
	x := FromInt64(-12)
	y := FromInt64(5)
	if s := Add(x, y); s.Cmp(FromInt64(-7)) != 0 {
		t.Fatalf("Add(-12,5) = %s, want -7", s)
	}
	if s := Sub(x, y); s.Cmp(FromInt64(-17)) != 0 {
		t.Fatalf("Sub(-12,5) = %s, want -17", s)
	}
	if p := Mul(x, y); p.Cmp(FromInt64(-60)) != 0 {
		t.Fatalf("Mul(-12,5) = %s, want -60", p)
	}
}
