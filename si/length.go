package si

// LengthUnit is a unit of Length. The zero value is Meter.
type LengthUnit uint8

// Length units.
const (
	Meter LengthUnit = iota
	Millimeter
	Centimeter
	Kilometer
)

var lengthUnits = [...]unitSpec{
	Meter:      {ratio: 1, abbr: "m"},
	Millimeter: {ratio: 1e-3, abbr: "mm"},
	Centimeter: {ratio: 1e-2, abbr: "cm"},
	Kilometer:  {ratio: 1e3, abbr: "km"},
}

func (u LengthUnit) Dimension() Dimension { return DimensionLength }
func (u LengthUnit) Ratio() float64       { return lengthUnits[u].ratio }
func (u LengthUnit) Abbreviation() string { return lengthUnits[u].abbr }
func (u LengthUnit) String() string       { return u.Abbreviation() }
func (u LengthUnit) aliases() []string    { return lengthUnits[u].aliases }
func (LengthUnit) Base() LengthUnit       { return Meter }
func (LengthUnit) Units() []LengthUnit {
	return []LengthUnit{Millimeter, Centimeter, Meter, Kilometer}
}

// Length is a distance.
type Length = Quantity[LengthUnit]

// Millimeters returns a Length of v millimeters.
func Millimeters(v float64) Length { return New(Millimeter, v) }

// Centimeters returns a Length of v centimeters.
func Centimeters(v float64) Length { return New(Centimeter, v) }

// Meters returns a Length of v meters.
func Meters(v float64) Length { return New(Meter, v) }

// Kilometers returns a Length of v kilometers.
func Kilometers(v float64) Length { return New(Kilometer, v) }
