package si

// MassUnit is a unit of Mass. The zero value is Kilogram.
type MassUnit uint8

// Mass units.
const (
	Kilogram MassUnit = iota
	Milligram
	Gram
	Tonne
)

var massUnits = [...]unitSpec{
	Kilogram:  {ratio: 1, abbr: "kg"},
	Milligram: {ratio: 1e-6, abbr: "mg"},
	Gram:      {ratio: 1e-3, abbr: "g"},
	Tonne:     {ratio: 1e3, abbr: "t"},
}

func (u MassUnit) Dimension() Dimension { return DimensionMass }
func (u MassUnit) Ratio() float64       { return massUnits[u].ratio }
func (u MassUnit) Abbreviation() string { return massUnits[u].abbr }
func (u MassUnit) String() string       { return u.Abbreviation() }
func (u MassUnit) aliases() []string    { return massUnits[u].aliases }
func (MassUnit) Base() MassUnit         { return Kilogram }
func (MassUnit) Units() []MassUnit {
	return []MassUnit{Milligram, Gram, Kilogram, Tonne}
}

// Mass is a quantity of matter.
type Mass = Quantity[MassUnit]

// Milligrams returns a Mass of v milligrams.
func Milligrams(v float64) Mass { return New(Milligram, v) }

// Grams returns a Mass of v grams.
func Grams(v float64) Mass { return New(Gram, v) }

// Kilograms returns a Mass of v kilograms.
func Kilograms(v float64) Mass { return New(Kilogram, v) }

// Tonnes returns a Mass of v metric tonnes.
func Tonnes(v float64) Mass { return New(Tonne, v) }
