package numeric

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is reported by integer division and remainder when the
// divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ArithmeticError describes a failed integer operation.
type ArithmeticError struct {
	// Op is the operation name ("div32", "rem64", ...).
	Op string

	// Dividend is the left operand, widened to 64 bits.
	Dividend int64

	// Err is the underlying sentinel (currently always ErrDivisionByZero).
	Err error
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %d / 0: %v", e.Op, e.Dividend, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// IsDivisionByZero returns true if err is, or wraps, ErrDivisionByZero.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

func divideByZero(op string, dividend int64) error {
	return &ArithmeticError{Op: op, Dividend: dividend, Err: ErrDivisionByZero}
}
