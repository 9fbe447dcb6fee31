package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/measure/internal/eval"
	"github.com/xraph/measure/si"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  eval.Quantity
	}{
		{"3km", si.Kilometers(3)},
		{"2.5 m²", si.SquareMeters(2.5)},
		{"20.2mm³", si.CubicMillimeters(20.2)},
		{"1.5t", si.Tonnes(1.5)},
		{"50min", si.Minutes(50)},
		{"20ms", si.Milliseconds(20)},
		{"2.5m/s", si.MetersPerSecond(2.5)},
		{"90 kph", si.KilometersPerHour(90)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := eval.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := eval.Parse("3 parsecs")
	assert.ErrorIs(t, err, si.ErrUnknownUnit)

	_, err = eval.Parse("")
	assert.ErrorIs(t, err, si.ErrEmptyInput)

	_, err = eval.Parse("many m")
	assert.ErrorIs(t, err, si.ErrInvalidMagnitude)
}

func TestUnitDimension(t *testing.T) {
	for abbr, want := range map[string]si.Dimension{
		"km":   si.DimensionLength,
		"m2":   si.DimensionArea,
		"cc":   si.DimensionVolume,
		"mg":   si.DimensionMass,
		"h":    si.DimensionTime,
		"km/h": si.DimensionVelocity,
	} {
		dim, ok := eval.UnitDimension(abbr)
		assert.True(t, ok, abbr)
		assert.Equal(t, want, dim, abbr)
	}

	_, ok := eval.UnitDimension("furlong")
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	q, err := eval.Convert(si.Meters(3000), "km")
	require.NoError(t, err)
	assert.Equal(t, "3km", q.String())

	q, err = eval.Convert(si.MetersPerSecond(10), "km/h")
	require.NoError(t, err)
	assert.InDelta(t, 36.0, q.Magnitude(), 1e-9)

	_, err = eval.Convert(si.Meters(1), "kg")
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)

	_, err = eval.Convert(si.Meters(1), "furlong")
	assert.ErrorIs(t, err, si.ErrUnknownUnit)
}

func TestSum(t *testing.T) {
	total, err := eval.Sum(si.Meters(1), si.Centimeters(50), si.Millimeters(5))
	require.NoError(t, err)
	assert.Equal(t, si.DimensionLength, total.Dimension())
	assert.InDelta(t, 1.505, total.Magnitude(), 1e-12)

	_, err = eval.Sum(si.Meters(1), si.Seconds(1))
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)

	_, err = eval.Sum()
	assert.ErrorIs(t, err, si.ErrEmptyInput)
}

func TestUnits(t *testing.T) {
	all, err := eval.Units()
	require.NoError(t, err)
	assert.Len(t, all, 4+4+4+4+5+2)

	mass, err := eval.Units(si.DimensionMass)
	require.NoError(t, err)
	require.Len(t, mass, 4)
	assert.Equal(t, "mg", mass[0].Abbreviation)
	assert.Equal(t, "t", mass[3].Abbreviation)

	var bases int
	for _, u := range all {
		if u.Base {
			bases++
			assert.Equal(t, 1.0, u.Ratio, u.Abbreviation)
		}
	}
	assert.Equal(t, len(si.Dimensions()), bases)

	_, err = eval.Units("temperature")
	assert.Error(t, err)
}

func TestAbbreviation(t *testing.T) {
	assert.Equal(t, "km/h", eval.Abbreviation(si.KilometersPerHour(3)))
	assert.Equal(t, "mm³", eval.Abbreviation(si.CubicMillimeters(1)))
	assert.Equal(t, "s", eval.Abbreviation(si.Zero[si.TimeUnit]()))
}

func TestAbbreviationsAreUniqueAcrossDimensions(t *testing.T) {
	units, err := eval.Units()
	require.NoError(t, err)

	seen := make(map[string]si.Dimension)
	for _, u := range units {
		prev, dup := seen[u.Abbreviation]
		assert.False(t, dup, "%s used by %s and %s", u.Abbreviation, prev, u.Dimension)
		seen[u.Abbreviation] = u.Dimension

		dim, ok := eval.UnitDimension(u.Abbreviation)
		assert.True(t, ok, u.Abbreviation)
		assert.Equal(t, u.Dimension, dim, u.Abbreviation)
	}
}
