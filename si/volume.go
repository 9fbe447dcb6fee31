package si

// VolumeUnit is a unit of Volume. The zero value is CubicMeter.
type VolumeUnit uint8

// Volume units.
const (
	CubicMeter VolumeUnit = iota
	CubicMillimeter
	CubicCentimeter
	CubicKilometer
)

var volumeUnits = [...]unitSpec{
	CubicMeter:      {ratio: 1, abbr: "m³", aliases: []string{"m3", "m^3"}},
	CubicMillimeter: {ratio: 1e-9, abbr: "mm³", aliases: []string{"mm3", "mm^3"}},
	CubicCentimeter: {ratio: 1e-6, abbr: "cm³", aliases: []string{"cm3", "cm^3", "cc"}},
	CubicKilometer:  {ratio: 1e9, abbr: "km³", aliases: []string{"km3", "km^3"}},
}

func (u VolumeUnit) Dimension() Dimension { return DimensionVolume }
func (u VolumeUnit) Ratio() float64       { return volumeUnits[u].ratio }
func (u VolumeUnit) Abbreviation() string { return volumeUnits[u].abbr }
func (u VolumeUnit) String() string       { return u.Abbreviation() }
func (u VolumeUnit) aliases() []string    { return volumeUnits[u].aliases }
func (VolumeUnit) Base() VolumeUnit       { return CubicMeter }
func (VolumeUnit) Units() []VolumeUnit {
	return []VolumeUnit{CubicMillimeter, CubicCentimeter, CubicMeter, CubicKilometer}
}

// Volume is a three-dimensional measure.
type Volume = Quantity[VolumeUnit]

// CubicMillimeters returns a Volume of v cubic millimeters.
func CubicMillimeters(v float64) Volume { return New(CubicMillimeter, v) }

// CubicCentimeters returns a Volume of v cubic centimeters.
func CubicCentimeters(v float64) Volume { return New(CubicCentimeter, v) }

// CubicMeters returns a Volume of v cubic meters.
func CubicMeters(v float64) Volume { return New(CubicMeter, v) }

// CubicKilometers returns a Volume of v cubic kilometers.
func CubicKilometers(v float64) Volume { return New(CubicKilometer, v) }
