package context_test

import (
	"errors"
	"fmt"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
	"github.com/dbfour-decimal/bigdecimal/context"
)

// solve solves the quadratic equation ax^2+bx+c = 0 using ctx's rounding
// mode and precision, adapted from db47h/decimal's context example: the
// teacher mutates a shared receiver through each step, this version
// threads immutable bigdecimal.Decimal values instead but keeps the same
// "check ctx.Err() once at the end" error-handling shape.
func solve(ctx *context.Context, a, b, c bigdecimal.Decimal) (x0, x1 bigdecimal.Decimal, err error) {
	four := bigdecimal.FromInt64(-4)
	two := bigdecimal.FromInt64(2)

	d := ctx.Mul(ctx.Mul(a, four), c)
	d = ctx.Add(d, ctx.Mul(b, b))
	if d.Sign() < 0 {
		return bigdecimal.Decimal{}, bigdecimal.Decimal{}, errors.New("no real roots")
	}
	d = ctx.Sqrt(d)
	twoA := ctx.Mul(a, two)
	negB := ctx.Neg(b)

	x0 = ctx.Quo(ctx.Add(negB, d), twoA)
	x1 = ctx.Quo(ctx.Sub(negB, d), twoA)

	if err = ctx.Err(); err != nil {
		return bigdecimal.Decimal{}, bigdecimal.Decimal{}, fmt.Errorf("error computing roots: %w", err)
	}
	return
}

// Example demonstrates various features of Context.
func Example() {
	ctx := context.New(4, bigdecimal.HalfEven)
	a := bigdecimal.FromInt64(1)
	b := bigdecimal.FromInt64(2)
	c := bigdecimal.FromInt64(-3)

	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve: %v\n", err)
		return
	}
	fmt.Printf("roots: %s, %s\n", x0.String(), x1.String())

	_, _, err = solve(ctx, bigdecimal.Zero(), b, c)
	if err != nil {
		fmt.Printf("failed to solve degenerate case: %v\n", err)
	}
	// Output:
	// roots: 1.000, -3.000
	// failed to solve degenerate case: error computing roots: bigdecimal: division by zero
}
