// Package context provides IEEE-754-style contexts for bigdecimal.Decimal,
// adapted from db47h/decimal's context package. The teacher's Context
// wraps a mutable *Decimal receiver and catches NaN panics; bigdecimal's
// Decimal is an immutable value type and its operations return errors
// instead of panicking, so this Context instead accumulates the first
// error from a chain of calls and makes every subsequent call a no-op
// until the caller reads it with Err — the same "sticky quiet NaN" user
// experience, achieved without a recover().
package context

import (
	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
	"github.com/dbfour-decimal/bigdecimal/transcendental"
)

// Context bundles a precision (significant digits kept after rounding)
// and rounding mode, and sticky-latches the first error encountered.
type Context struct {
	prec int64
	mode bigdecimal.RoundingMode
	err  error
}

// New creates a new context with the given precision and rounding mode.
// If prec <= 0, it defaults to 34 (matching the common decimal128
// working precision).
func New(prec int64, mode bigdecimal.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns c's rounding mode.
func (c *Context) Mode() bigdecimal.RoundingMode { return c.mode }

// Prec returns c's precision in decimal digits.
func (c *Context) Prec() int64 { return c.prec }

// SetMode sets c's rounding mode and returns c.
func (c *Context) SetMode(mode bigdecimal.RoundingMode) *Context {
	c.mode = mode
	return c
}

const defaultPrec = 34

// SetPrec sets c's precision and returns c. A prec <= 0 resets to the
// default precision.
func (c *Context) SetPrec(prec int64) *Context {
	if prec <= 0 {
		prec = defaultPrec
	}
	c.prec = prec
	return c
}

// Err returns the first error encountered since the last call to Err, and
// clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// Round returns x rounded to c's precision (significant digits) and mode.
func (c *Context) Round(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return bigdecimal.RoundSignificant(x, c.prec, c.mode)
}

// NewFromString parses s and rounds it to c's precision and mode.
func (c *Context) NewFromString(s string) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	d, err := bigdecimal.FromString(s)
	if err != nil {
		c.err = err
		return bigdecimal.Decimal{}
	}
	return c.Round(d)
}

// Add returns x+y rounded to c's precision and mode.
func (c *Context) Add(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(bigdecimal.Add(x, y))
}

// Sub returns x-y rounded to c's precision and mode.
func (c *Context) Sub(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(bigdecimal.Sub(x, y))
}

// Mul returns x*y rounded to c's precision and mode.
func (c *Context) Mul(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(bigdecimal.Mul(x, y))
}

// Quo returns x/y rounded to c's precision and mode, latching
// ErrDivisionByZero into c's error state instead of propagating it.
func (c *Context) Quo(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	r, err := bigdecimal.Divide(x, y, c.prec, c.mode)
	if err != nil {
		c.err = err
		return bigdecimal.Decimal{}
	}
	return r
}

// Neg returns -x.
func (c *Context) Neg(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(x.Neg())
}

// Abs returns |x|.
func (c *Context) Abs(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(x.Abs())
}

// Sqrt returns the square root of x rounded to c's precision and mode.
func (c *Context) Sqrt(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	r, err := bigdecimal.Sqrt(x, c.prec, c.mode)
	if err != nil {
		c.err = err
		return bigdecimal.Decimal{}
	}
	return r
}

// Ln returns the natural logarithm of x rounded to c's precision and mode.
func (c *Context) Ln(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	r, err := transcendental.Ln(x, c.prec)
	if err != nil {
		c.err = err
		return bigdecimal.Decimal{}
	}
	return c.Round(r)
}

// Exp returns e^x rounded to c's precision and mode.
func (c *Context) Exp(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Decimal{}
	}
	return c.Round(transcendental.Exp(x, c.prec))
}
