package bigdecimal_test

import (
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
	"github.com/dbfour-decimal/bigdecimal/transcendental"
)

// scenario is one golden end-to-end case from testdata/scenarios.toml,
// grounded on spec.md §8's "Concrete end-to-end scenarios" table.
type scenario struct {
	Name      string `toml:"name"`
	Op        string `toml:"op"`
	A         string `toml:"a"`
	B         string `toml:"b"`
	Precision int64  `toml:"precision"`
	Want      string `toml:"want"`
}

type scenarioFile struct {
	Scenario []scenario `toml:"scenario"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	var f scenarioFile
	if _, err := toml.DecodeFile("../testdata/scenarios.toml", &f); err != nil {
		t.Fatalf("loading testdata/scenarios.toml: %v", err)
	}
	if len(f.Scenario) == 0 {
		t.Fatal("no scenarios loaded")
	}
	return f.Scenario
}

func TestConformanceScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			a, err := bigdecimal.FromString(sc.A)
			if err != nil {
				t.Fatalf("parsing a=%q: %v", sc.A, err)
			}

			var got bigdecimal.Decimal
			switch sc.Op {
			case "divide":
				b, err := bigdecimal.FromString(sc.B)
				if err != nil {
					t.Fatalf("parsing b=%q: %v", sc.B, err)
				}
				got, err = bigdecimal.Divide(a, b, sc.Precision, bigdecimal.HalfEven)
				if err != nil {
					t.Fatalf("divide: %v", err)
				}
			case "add":
				b, err := bigdecimal.FromString(sc.B)
				if err != nil {
					t.Fatalf("parsing b=%q: %v", sc.B, err)
				}
				got = bigdecimal.Add(a, b)
			case "sqrt":
				got, err = bigdecimal.Sqrt(a, sc.Precision, bigdecimal.HalfEven)
				if err != nil {
					t.Fatalf("sqrt: %v", err)
				}
			case "ln":
				got, err = transcendental.Ln(a, sc.Precision)
				if err != nil {
					t.Fatalf("ln: %v", err)
				}
			case "arctan":
				got = transcendental.Arctan(a, sc.Precision)
			default:
				t.Fatalf("unknown op %q", sc.Op)
			}

			if got.String() != sc.Want {
				t.Errorf("%s: got %s want %s", sc.Name, got.String(), sc.Want)
			}
		})
	}
}

// TestUniversalInvariants covers spec.md §8's numbered universal
// invariants not already exercised by the golden scenarios above.
func TestUniversalInvariants(t *testing.T) {
	t.Run("sign_cancellation_is_positive_zero", func(t *testing.T) {
		a, _ := bigdecimal.FromString("3.50")
		b := a.Neg()
		sum := bigdecimal.Add(a, b)
		if sum.Sign() != 0 {
			t.Fatalf("a+(-a) sign: got %d", sum.Sign())
		}
	})

	t.Run("multiplication_scale_is_additive", func(t *testing.T) {
		a, _ := bigdecimal.FromString("1.23")  // scale 2
		b, _ := bigdecimal.FromString("4.5")   // scale 1
		p := bigdecimal.Mul(a, b)
		if p.Scale() != 3 {
			t.Fatalf("scale(a*b): got %d want 3", p.Scale())
		}
		if p.String() != "5.535" {
			t.Fatalf("a*b: got %s want 5.535", p.String())
		}
	})

	t.Run("division_bound_half_even", func(t *testing.T) {
		a, _ := bigdecimal.FromString("1")
		b, _ := bigdecimal.FromString("3")
		q, err := bigdecimal.Divide(a, b, 20, bigdecimal.HalfEven)
		if err != nil {
			t.Fatal(err)
		}
		// 1/3 to 20 digits, then multiplied back by 3, must be within
		// 0.5*10^-19 of 1 (the working-precision rounding bound).
		back := bigdecimal.Mul(q, b)
		diff := bigdecimal.Sub(back, a).Abs()
		tol, _ := bigdecimal.FromString("0.00000000000000000005")
		if diff.Cmp(tol) > 0 {
			t.Fatalf("division bound violated: diff=%s", diff.String())
		}
	})
}
