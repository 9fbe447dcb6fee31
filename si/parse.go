package si

import (
	"fmt"
	"strconv"
	"strings"
)

// special magnitudes accepted in place of a decimal number. These are the
// spellings String produces for non-finite values.
var specialMagnitudes = []string{"+Inf", "-Inf", "Inf", "NaN"}

// Parse decodes a quantity of dimension U from "<number>[ ]<unit>",
// e.g. "3km", "2.5 m/s" or "20.2mm³". Units may be given by abbreviation
// or by one of their ASCII aliases ("m2", "kmh", ...).
//
// Errors are *ParseError wrapping ErrEmptyInput, ErrInvalidMagnitude or
// ErrUnknownUnit.
func Parse[U Unit[U]](s string) (Quantity[U], error) {
	var zero U
	dim := zero.Dimension()

	in := strings.TrimSpace(s)
	if in == "" {
		return Quantity[U]{}, &ParseError{Input: s, Dimension: dim, Err: ErrEmptyInput}
	}

	num, name := splitMagnitude(in)
	if num == "" {
		return Quantity[U]{}, &ParseError{Input: s, Dimension: dim, Err: fmt.Errorf("%w: missing number", ErrInvalidMagnitude)}
	}

	magnitude, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity[U]{}, &ParseError{Input: s, Dimension: dim, Err: fmt.Errorf("%w %q", ErrInvalidMagnitude, num)}
	}

	unit, err := ParseUnit[U](name)
	if err != nil {
		return Quantity[U]{}, &ParseError{Input: s, Dimension: dim, Err: err}
	}

	return New(unit, magnitude), nil
}

// MustParse is like Parse but panics on error. Use for hardcoded values.
func MustParse[U Unit[U]](s string) Quantity[U] {
	q, err := Parse[U](s)
	if err != nil {
		panic(fmt.Sprintf("si: must parse %q: %v", s, err))
	}
	return q
}

// splitMagnitude splits s into its leading number and the trimmed rest.
func splitMagnitude(s string) (string, string) {
	for _, special := range specialMagnitudes {
		if len(s) >= len(special) && strings.EqualFold(s[:len(special)], special) {
			return s[:len(special)], strings.TrimSpace(s[len(special):])
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.':
			i++
		case (c == '+' || c == '-') && i == 0:
			i++
		case (c == 'e' || c == 'E') && i > 0 && exponentFollows(s[i+1:]):
			i++
			if s[i] == '+' || s[i] == '-' {
				i++
			}
		default:
			return s[:i], strings.TrimSpace(s[i:])
		}
	}

	return s, ""
}

// exponentFollows reports whether rest starts with an optionally signed digit.
func exponentFollows(rest string) bool {
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	return rest != "" && rest[0] >= '0' && rest[0] <= '9'
}
