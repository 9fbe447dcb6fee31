package measure

import "github.com/xraph/measure/si"

// Sentinel errors for decoding failures. Arithmetic never fails.
var (
	ErrEmptyInput           = si.ErrEmptyInput
	ErrInvalidMagnitude     = si.ErrInvalidMagnitude
	ErrUnknownUnit          = si.ErrUnknownUnit
	ErrDimensionMismatch    = si.ErrDimensionMismatch
	ErrUnsupportedOperation = si.ErrUnsupportedOperation
	ErrInvalidEncoding      = si.ErrInvalidEncoding
)

// ParseError is re-exported from the si package.
type ParseError = si.ParseError
