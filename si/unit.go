// Package si provides typed physical quantities.
//
// A Quantity pairs a float64 magnitude with a unit of one dimension. The
// dimension is part of the type: a Length can only be added to a Length, and
// multiplying two Lengths yields an Area. Same-dimension arithmetic and all
// cross-dimension operators compute in the dimension's base unit and return
// their result in the base unit of the result dimension.
//
// There is no error channel in the arithmetic. Division by a zero quantity
// yields ±Inf or NaN as IEEE-754 prescribes.
package si

import "strings"

// Dimension names a physical quantity category.
type Dimension string

// Supported dimensions.
const (
	DimensionLength   Dimension = "length"
	DimensionArea     Dimension = "area"
	DimensionVolume   Dimension = "volume"
	DimensionMass     Dimension = "mass"
	DimensionTime     Dimension = "time"
	DimensionVelocity Dimension = "velocity"
)

// Dimensions returns every supported dimension.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionLength,
		DimensionArea,
		DimensionVolume,
		DimensionMass,
		DimensionTime,
		DimensionVelocity,
	}
}

// String returns the dimension name.
func (d Dimension) String() string { return string(d) }

// Unit is the constraint satisfied by the unit type of each dimension.
//
// Ratio is the factor that converts one of this unit into the dimension's
// base unit; exactly one unit per dimension has ratio 1 and is returned by
// Base. Units lists every unit of the dimension in ascending ratio order.
// Base and Units do not depend on the receiver, so they may be called on
// the zero value.
type Unit[U any] interface {
	comparable
	Dimension() Dimension
	Ratio() float64
	Abbreviation() string
	Base() U
	Units() []U
}

type unitSpec struct {
	ratio   float64
	abbr    string
	aliases []string
}

// aliased is implemented by unit types that accept alternative spellings.
type aliased interface {
	aliases() []string
}

// ParseUnit returns the unit of U whose abbreviation or alias equals s.
// Surrounding whitespace is ignored.
func ParseUnit[U Unit[U]](s string) (U, error) {
	var zero U
	name := strings.TrimSpace(s)
	units := zero.Units()

	for _, u := range units {
		if u.Abbreviation() == name {
			return u, nil
		}
	}
	for _, u := range units {
		a, ok := any(u).(aliased)
		if !ok {
			continue
		}
		for _, alias := range a.aliases() {
			if strings.EqualFold(alias, name) {
				return u, nil
			}
		}
	}

	return zero, unknownUnit(name, zero.Dimension())
}
