package si

import (
	"errors"
	"fmt"
)

// Sentinel errors returned when decoding quantities from text or encoded
// form. Arithmetic never returns errors.
var (
	ErrEmptyInput           = errors.New("si: empty quantity")
	ErrInvalidMagnitude     = errors.New("si: invalid magnitude")
	ErrUnknownUnit          = errors.New("si: unknown unit")
	ErrDimensionMismatch    = errors.New("si: dimension mismatch")
	ErrUnsupportedOperation = errors.New("si: unsupported operation")
	ErrInvalidEncoding      = errors.New("si: invalid encoding")
)

// ParseError describes a quantity string that could not be decoded.
type ParseError struct {
	Input     string
	Dimension Dimension
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Dimension, e.Input, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

func unknownUnit(name string, dim Dimension) error {
	return fmt.Errorf("%w %q for %s", ErrUnknownUnit, name, dim)
}
