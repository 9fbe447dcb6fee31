package si

import (
	"cmp"
	"strconv"
)

// Quantity is a magnitude expressed in a unit of one dimension.
// The magnitude is interpreted strictly relative to the unit.
//
// Examples:
//   - Kilometers(3) = 3km
//   - New(Millisecond, 20.2) = 20.2ms
//   - MetersPerSecond(2.5) = 2.5m/s
//
// Quantities are values. Every operation returns a new Quantity except
// AddAssign and SubAssign, which overwrite their receiver.
//
//nolint:recvcheck // Value receivers for read-only methods, pointer receivers for assignment and decoding.
type Quantity[U Unit[U]] struct {
	unit      U
	magnitude float64
}

// New returns a Quantity of magnitude in unit. The magnitude is not
// validated; NaN, infinities and negative values are stored as given.
func New[U Unit[U]](unit U, magnitude float64) Quantity[U] {
	return Quantity[U]{unit: unit, magnitude: magnitude}
}

// inBase returns a Quantity of U's base unit.
func inBase[U Unit[U]](base float64) Quantity[U] {
	var zero U
	return Quantity[U]{unit: zero.Base(), magnitude: base}
}

// Zero returns a zero Quantity in the base unit of U.
func Zero[U Unit[U]]() Quantity[U] { return inBase[U](0) }

// Magnitude returns the stored magnitude.
func (q Quantity[U]) Magnitude() float64 { return q.magnitude }

// BaseMagnitude returns the magnitude expressed in the base unit.
func (q Quantity[U]) BaseMagnitude() float64 { return q.magnitude * q.unit.Ratio() }

// Unit returns the unit of the quantity.
func (q Quantity[U]) Unit() U { return q.unit }

// Dimension returns the dimension of the quantity's unit.
func (q Quantity[U]) Dimension() Dimension { return q.unit.Dimension() }

// Convert returns the quantity expressed in unit. The base magnitude is
// preserved; converting to the current unit returns q unchanged.
func (q Quantity[U]) Convert(unit U) Quantity[U] {
	if unit == q.unit {
		return q
	}
	return Quantity[U]{unit: unit, magnitude: q.BaseMagnitude() / unit.Ratio()}
}

// Arithmetic operations

// Add returns q + other in the base unit.
func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return inBase[U](q.BaseMagnitude() + other.BaseMagnitude())
}

// Sub returns q - other in the base unit.
func (q Quantity[U]) Sub(other Quantity[U]) Quantity[U] {
	return inBase[U](q.BaseMagnitude() - other.BaseMagnitude())
}

// AddAssign replaces q with q.Add(other).
func (q *Quantity[U]) AddAssign(other Quantity[U]) {
	*q = q.Add(other)
}

// SubAssign replaces q with q.Sub(other).
func (q *Quantity[U]) SubAssign(other Quantity[U]) {
	*q = q.Sub(other)
}

// Scale multiplies the magnitude by factor. The unit is kept.
func (q Quantity[U]) Scale(factor float64) Quantity[U] {
	return Quantity[U]{unit: q.unit, magnitude: q.magnitude * factor}
}

// Negate returns the negative of the quantity.
func (q Quantity[U]) Negate() Quantity[U] {
	return Quantity[U]{unit: q.unit, magnitude: -q.magnitude}
}

// Abs returns the absolute value.
func (q Quantity[U]) Abs() Quantity[U] {
	if q.magnitude < 0 {
		return q.Negate()
	}
	return q
}

// Comparison methods

// IsZero reports whether the magnitude is zero.
func (q Quantity[U]) IsZero() bool { return q.magnitude == 0 }

// IsPositive reports whether the magnitude is greater than zero.
func (q Quantity[U]) IsPositive() bool { return q.magnitude > 0 }

// IsNegative reports whether the magnitude is less than zero.
func (q Quantity[U]) IsNegative() bool { return q.magnitude < 0 }

// Equal reports whether both quantities have the same unit and magnitude.
// 1km and 1000m are not Equal; use Compare for unit-independent ordering.
func (q Quantity[U]) Equal(other Quantity[U]) bool {
	return q.unit == other.unit && q.magnitude == other.magnitude
}

// Compare orders quantities by base magnitude, following cmp.Compare.
func (q Quantity[U]) Compare(other Quantity[U]) int {
	return cmp.Compare(q.BaseMagnitude(), other.BaseMagnitude())
}

// LessThan reports whether q is smaller than other.
func (q Quantity[U]) LessThan(other Quantity[U]) bool { return q.Compare(other) < 0 }

// GreaterThan reports whether q is larger than other.
func (q Quantity[U]) GreaterThan(other Quantity[U]) bool { return q.Compare(other) > 0 }

// Min returns the smaller of q and other, unconverted.
func (q Quantity[U]) Min(other Quantity[U]) Quantity[U] {
	if q.Compare(other) <= 0 {
		return q
	}
	return other
}

// Max returns the larger of q and other, unconverted.
func (q Quantity[U]) Max(other Quantity[U]) Quantity[U] {
	if q.Compare(other) >= 0 {
		return q
	}
	return other
}

// Formatting methods

// String formats the quantity as magnitude followed by the unit
// abbreviation, using the shortest decimal that represents the magnitude:
// "3km", "2.5m/s", "20.2mm³".
func (q Quantity[U]) String() string {
	return q.Text(-1)
}

// Text is like String with exactly prec decimals. A negative prec selects
// the shortest representation.
func (q Quantity[U]) Text(prec int) string {
	return strconv.FormatFloat(q.magnitude, 'f', prec, 64) + q.unit.Abbreviation()
}

// Sum adds all values in the base unit. An empty call returns Zero.
func Sum[U Unit[U]](values ...Quantity[U]) Quantity[U] {
	var total float64
	for _, v := range values {
		total += v.BaseMagnitude()
	}
	return inBase[U](total)
}
