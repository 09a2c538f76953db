package keycalc

import (
	"errors"
	"strconv"
)

// ErrDivideByZero is the cause of an Error result from dividing by zero,
// either with the / operator or with the reciprocal of zero.
var ErrDivideByZero = errors.New("division by zero")

// NumberError is an error indicating an operand that is not a number.
type NumberError struct {
	// Text is the operand text.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return "missing operand"
	}
	return "malformed number " + strconv.Quote(err.Text)
}

// DomainError is an error returned when a function is applied to an argument
// outside its domain. A DomainError produced by a NaN panic in a big.Float
// computation unwraps to the panic value, which in turn unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function.
	Func string

	nan error
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return err.nan
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from text that cannot be read as keys implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var _ InputError = (*LexError)(nil)
