package si_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/measure/si"
)

func checkUnitTable[U si.Unit[U]](t *testing.T, dim si.Dimension, base U) {
	t.Helper()

	var zero U
	assert.Equal(t, base, zero, "zero value should be the base unit")
	assert.Equal(t, base, zero.Base())
	assert.Equal(t, dim, zero.Dimension())

	units := zero.Units()
	require.NotEmpty(t, units)

	bases := 0
	seen := make(map[string]bool)
	for i, u := range units {
		assert.Greater(t, u.Ratio(), 0.0, "ratio of %s", u.Abbreviation())
		assert.NotEmpty(t, u.Abbreviation())
		assert.False(t, seen[u.Abbreviation()], "duplicate abbreviation %s", u.Abbreviation())
		seen[u.Abbreviation()] = true

		if u.Ratio() == 1 {
			bases++
			assert.Equal(t, base, u)
		}
		if i > 0 {
			assert.Less(t, units[i-1].Ratio(), u.Ratio(), "units should be listed by ascending ratio")
		}

		parsed, err := si.ParseUnit[U](u.Abbreviation())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
	assert.Equal(t, 1, bases, "exactly one unit should have ratio 1")
}

func TestUnitTables(t *testing.T) {
	t.Run("Length", func(t *testing.T) { checkUnitTable(t, si.DimensionLength, si.Meter) })
	t.Run("Area", func(t *testing.T) { checkUnitTable(t, si.DimensionArea, si.SquareMeter) })
	t.Run("Volume", func(t *testing.T) { checkUnitTable(t, si.DimensionVolume, si.CubicMeter) })
	t.Run("Mass", func(t *testing.T) { checkUnitTable(t, si.DimensionMass, si.Kilogram) })
	t.Run("Time", func(t *testing.T) { checkUnitTable(t, si.DimensionTime, si.Second) })
	t.Run("Velocity", func(t *testing.T) { checkUnitTable(t, si.DimensionVelocity, si.MeterPerSecond) })
}

func TestUnitRatios(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"km", si.Kilometer.Ratio(), 1000},
		{"cm", si.Centimeter.Ratio(), 0.01},
		{"mm", si.Millimeter.Ratio(), 0.001},
		{"km²", si.SquareKilometer.Ratio(), 1e6},
		{"mm²", si.SquareMillimeter.Ratio(), 1e-6},
		{"km³", si.CubicKilometer.Ratio(), 1e9},
		{"cm³", si.CubicCentimeter.Ratio(), 1e-6},
		{"g", si.Gram.Ratio(), 0.001},
		{"t", si.Tonne.Ratio(), 1000},
		{"min", si.Minute.Ratio(), 60},
		{"h", si.Hour.Ratio(), 3600},
		{"d", si.Day.Ratio(), 86400},
		{"km/h", si.KilometerPerHour.Ratio(), 1 / 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.ratio, 1e-12)
		})
	}
}

func TestParseUnitAliases(t *testing.T) {
	area, err := si.ParseUnit[si.AreaUnit]("m2")
	require.NoError(t, err)
	assert.Equal(t, si.SquareMeter, area)

	vol, err := si.ParseUnit[si.VolumeUnit](" km^3 ")
	require.NoError(t, err)
	assert.Equal(t, si.CubicKilometer, vol)

	vel, err := si.ParseUnit[si.VelocityUnit]("KPH")
	require.NoError(t, err)
	assert.Equal(t, si.KilometerPerHour, vel)

	tm, err := si.ParseUnit[si.TimeUnit]("hr")
	require.NoError(t, err)
	assert.Equal(t, si.Hour, tm)

	_, err = si.ParseUnit[si.LengthUnit]("kg")
	assert.ErrorIs(t, err, si.ErrUnknownUnit)

	// Abbreviations are case-sensitive.
	_, err = si.ParseUnit[si.LengthUnit]("KM")
	assert.ErrorIs(t, err, si.ErrUnknownUnit)
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "km", si.Kilometer.String())
	assert.Equal(t, "m/s", si.MeterPerSecond.String())
	assert.Equal(t, "min", si.Minute.String())
	assert.Equal(t, "length", si.DimensionLength.String())
	assert.Len(t, si.Dimensions(), 6)
}
