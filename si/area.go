package si

// AreaUnit is a unit of Area. The zero value is SquareMeter.
type AreaUnit uint8

// Area units.
const (
	SquareMeter AreaUnit = iota
	SquareMillimeter
	SquareCentimeter
	SquareKilometer
)

var areaUnits = [...]unitSpec{
	SquareMeter:      {ratio: 1, abbr: "m²", aliases: []string{"m2", "m^2", "sqm"}},
	SquareMillimeter: {ratio: 1e-6, abbr: "mm²", aliases: []string{"mm2", "mm^2"}},
	SquareCentimeter: {ratio: 1e-4, abbr: "cm²", aliases: []string{"cm2", "cm^2"}},
	SquareKilometer:  {ratio: 1e6, abbr: "km²", aliases: []string{"km2", "km^2"}},
}

func (u AreaUnit) Dimension() Dimension { return DimensionArea }
func (u AreaUnit) Ratio() float64       { return areaUnits[u].ratio }
func (u AreaUnit) Abbreviation() string { return areaUnits[u].abbr }
func (u AreaUnit) String() string       { return u.Abbreviation() }
func (u AreaUnit) aliases() []string    { return areaUnits[u].aliases }
func (AreaUnit) Base() AreaUnit         { return SquareMeter }
func (AreaUnit) Units() []AreaUnit {
	return []AreaUnit{SquareMillimeter, SquareCentimeter, SquareMeter, SquareKilometer}
}

// Area is a surface measure.
type Area = Quantity[AreaUnit]

// SquareMillimeters returns an Area of v square millimeters.
func SquareMillimeters(v float64) Area { return New(SquareMillimeter, v) }

// SquareCentimeters returns an Area of v square centimeters.
func SquareCentimeters(v float64) Area { return New(SquareCentimeter, v) }

// SquareMeters returns an Area of v square meters.
func SquareMeters(v float64) Area { return New(SquareMeter, v) }

// SquareKilometers returns an Area of v square kilometers.
func SquareKilometers(v float64) Area { return New(SquareKilometer, v) }
