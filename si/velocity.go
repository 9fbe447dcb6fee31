package si

// VelocityUnit is a unit of Velocity. The zero value is MeterPerSecond.
type VelocityUnit uint8

// Velocity units.
const (
	MeterPerSecond VelocityUnit = iota
	KilometerPerHour
)

var velocityUnits = [...]unitSpec{
	MeterPerSecond:   {ratio: 1, abbr: "m/s", aliases: []string{"mps"}},
	KilometerPerHour: {ratio: 1000.0 / 3600.0, abbr: "km/h", aliases: []string{"kmh", "kph", "km/hr"}},
}

func (u VelocityUnit) Dimension() Dimension { return DimensionVelocity }
func (u VelocityUnit) Ratio() float64       { return velocityUnits[u].ratio }
func (u VelocityUnit) Abbreviation() string { return velocityUnits[u].abbr }
func (u VelocityUnit) String() string       { return u.Abbreviation() }
func (u VelocityUnit) aliases() []string    { return velocityUnits[u].aliases }
func (VelocityUnit) Base() VelocityUnit     { return MeterPerSecond }
func (VelocityUnit) Units() []VelocityUnit {
	return []VelocityUnit{KilometerPerHour, MeterPerSecond}
}

// Velocity is a speed.
type Velocity = Quantity[VelocityUnit]

// MetersPerSecond returns a Velocity of v meters per second.
func MetersPerSecond(v float64) Velocity { return New(MeterPerSecond, v) }

// KilometersPerHour returns a Velocity of v kilometers per hour.
func KilometersPerHour(v float64) Velocity { return New(KilometerPerHour, v) }
