package measure

import "github.com/xraph/measure/si"

// Re-export common types for convenience so users don't have to import the si package.

// Quantity is re-exported from the si package.
type Quantity[U si.Unit[U]] = si.Quantity[U]

// Dimension is re-exported from the si package.
type Dimension = si.Dimension

// Dimension types.
type (
	Length   = si.Length
	Area     = si.Area
	Volume   = si.Volume
	Mass     = si.Mass
	Time     = si.Time
	Velocity = si.Velocity
)

// Unit types.
type (
	LengthUnit   = si.LengthUnit
	AreaUnit     = si.AreaUnit
	VolumeUnit   = si.VolumeUnit
	MassUnit     = si.MassUnit
	TimeUnit     = si.TimeUnit
	VelocityUnit = si.VelocityUnit
)

// Units.
const (
	Millimeter = si.Millimeter
	Centimeter = si.Centimeter
	Meter      = si.Meter
	Kilometer  = si.Kilometer

	SquareMillimeter = si.SquareMillimeter
	SquareCentimeter = si.SquareCentimeter
	SquareMeter      = si.SquareMeter
	SquareKilometer  = si.SquareKilometer

	CubicMillimeter = si.CubicMillimeter
	CubicCentimeter = si.CubicCentimeter
	CubicMeter      = si.CubicMeter
	CubicKilometer  = si.CubicKilometer

	Milligram = si.Milligram
	Gram      = si.Gram
	Kilogram  = si.Kilogram
	Tonne     = si.Tonne

	Millisecond = si.Millisecond
	Second      = si.Second
	Minute      = si.Minute
	Hour        = si.Hour
	Day         = si.Day

	MeterPerSecond   = si.MeterPerSecond
	KilometerPerHour = si.KilometerPerHour
)

// Re-export quantity constructors
var (
	Millimeters = si.Millimeters
	Centimeters = si.Centimeters
	Meters      = si.Meters
	Kilometers  = si.Kilometers

	SquareMillimeters = si.SquareMillimeters
	SquareCentimeters = si.SquareCentimeters
	SquareMeters      = si.SquareMeters
	SquareKilometers  = si.SquareKilometers

	CubicMillimeters = si.CubicMillimeters
	CubicCentimeters = si.CubicCentimeters
	CubicMeters      = si.CubicMeters
	CubicKilometers  = si.CubicKilometers

	Milligrams = si.Milligrams
	Grams      = si.Grams
	Kilograms  = si.Kilograms
	Tonnes     = si.Tonnes

	Milliseconds = si.Milliseconds
	Seconds      = si.Seconds
	Minutes      = si.Minutes
	Hours        = si.Hours
	Days         = si.Days

	MetersPerSecond   = si.MetersPerSecond
	KilometersPerHour = si.KilometersPerHour

	TimeOf     = si.TimeOf
	DurationOf = si.DurationOf
)

// Re-export cross-dimension operators
var (
	MulLengthLength   = si.MulLengthLength
	MulLengthArea     = si.MulLengthArea
	MulAreaLength     = si.MulAreaLength
	DivAreaLength     = si.DivAreaLength
	DivVolumeLength   = si.DivVolumeLength
	DivVolumeArea     = si.DivVolumeArea
	DivLengthTime     = si.DivLengthTime
	DivLengthVelocity = si.DivLengthVelocity
	MulVelocityTime   = si.MulVelocityTime
)

// Re-export parsers
var (
	ParseLength   = si.Parse[si.LengthUnit]
	ParseArea     = si.Parse[si.AreaUnit]
	ParseVolume   = si.Parse[si.VolumeUnit]
	ParseMass     = si.Parse[si.MassUnit]
	ParseTime     = si.Parse[si.TimeUnit]
	ParseVelocity = si.Parse[si.VelocityUnit]
)

// New returns a Quantity of magnitude in unit.
func New[U si.Unit[U]](unit U, magnitude float64) Quantity[U] {
	return si.New(unit, magnitude)
}

// Sum adds all values in the base unit.
func Sum[U si.Unit[U]](values ...Quantity[U]) Quantity[U] {
	return si.Sum(values...)
}
