package prim

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyInput              = errors.New("input string was empty")
	ErrNoParsableDigits        = errors.New("no parsable digits")
	ErrTrailingJunk            = errors.New("additional non-parsable characters at end of input")
	ErrOverflow                = errors.New("value out of range")
	ErrNegativeUnsigned        = errors.New("negative value for unsigned type")
	ErrNegativeNonDecimal      = errors.New("negative value only valid in radix 10")
	ErrInvalidBase             = errors.New("invalid radix")
	ErrBadFormat               = errors.New("invalid format")
	ErrInsufficientDestination = errors.New("destination too short")
)

// A NumError records a failed parse, format or conversion. Type names the
// kind that the operation targeted; for overflow it is the width that
// overflowed.
type NumError struct {
	Func  string
	Input string
	Type  Kind
	Err   error
}

func (e *NumError) Error() string {
	s := "prim: " + e.Func
	if e.Input != "" {
		s += " " + strconv.Quote(e.Input)
	}
	s += ": "
	if e.Type != Invalid {
		s += e.Type.String() + " "
	}
	return s + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func numError(fn, input string, kind Kind, err error) *NumError {
	return &NumError{Func: fn, Input: input, Type: kind, Err: err}
}
