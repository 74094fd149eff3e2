package bigdecimal

import "errors"

// Sentinel errors, grounded on decimal.go's ErrNaN — a single shared error
// value per failure mode, returned rather than panicked, so callers can
// errors.Is against it (the context package latches the first such error
// it sees, mirroring decimal.go's handleNaNs; it does not recover panics).
var (
	ErrInvalidString      = errors.New("bigdecimal: invalid decimal string")
	ErrDivisionByZero     = errors.New("bigdecimal: division by zero")
	ErrNegativeSqrt       = errors.New("bigdecimal: square root of negative number")
	ErrInvalidDomain      = errors.New("bigdecimal: argument outside function domain")
	ErrOverflowToFixedType = errors.New("bigdecimal: value does not fit in fixed-width type")
	ErrPrecisionExceeded  = errors.New("bigdecimal: requested precision exceeds configured limit")
	ErrNegativeExponent   = errors.New("bigdecimal: negative exponent")
)
