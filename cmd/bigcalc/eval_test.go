package main

import (
	"testing"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

func eval(t *testing.T, expr string) bigdecimal.Decimal {
	t.Helper()
	toks, err := tokenize(expr)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", expr, err)
	}
	v, err := newEvaluator(20, bigdecimal.HalfEven).Eval(toks)
	if err != nil {
		t.Fatalf("Eval(%q): %v", expr, err)
	}
	return v
}

func TestArithmeticPrecedence(t *testing.T) {
	cases := map[string]string{
		"2 + 3 * 4":   "14",
		"(2 + 3) * 4": "20",
		"2 ^ 3 ^ 2":   "512.00000000000000000", // right-associative: 2^(3^2)
		"-3 + 4":      "1",
		"10 / 4":      "2.5000000000000000000",
	}
	for expr, want := range cases {
		got := eval(t, expr)
		if got.String() != want {
			t.Errorf("%s: got %s want %s", expr, got.String(), want)
		}
	}
}

func TestFunctionCalls(t *testing.T) {
	got := eval(t, "sqrt(4)")
	if got.String()[:1] != "2" {
		t.Errorf("sqrt(4): got %s", got.String())
	}
}

func TestBinaryFunctionCall(t *testing.T) {
	got := eval(t, "root(2, 4)")
	if got.String()[:1] != "2" {
		t.Errorf("root(2,4): got %s", got.String())
	}
}

func TestUnknownIdentifier(t *testing.T) {
	toks, err := tokenize("foo(1)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := newEvaluator(20, bigdecimal.HalfEven).Eval(toks); err == nil {
		t.Fatal("expected error for unknown identifier")
	}
}
