// Package eval evaluates quantities whose dimension is only known at
// runtime. It backs the measure command and resolves every operation
// through the statically typed functions of package si.
package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xraph/measure/si"
)

// Quantity is implemented by every si.Quantity instantiation.
type Quantity interface {
	fmt.Stringer
	Dimension() si.Dimension
	Magnitude() float64
	BaseMagnitude() float64
	Text(prec int) string
}

// UnitInfo describes one unit of a dimension.
type UnitInfo struct {
	Dimension    si.Dimension `json:"dimension"    yaml:"dimension"`
	Abbreviation string       `json:"abbreviation" yaml:"abbreviation"`
	Ratio        float64      `json:"ratio"        yaml:"ratio"`
	Base         bool         `json:"base"         yaml:"base"`
}

// dimension erases the unit type parameter of one dimension.
type dimension struct {
	name    si.Dimension
	parse   func(s string) (Quantity, error)
	convert func(q Quantity, abbr string) (Quantity, bool, error)
	sum     func(qs []Quantity) (Quantity, bool)
	unit    func(q Quantity) (string, bool)
	units   []UnitInfo
	has     func(abbr string) bool
}

func describe[U si.Unit[U]]() dimension {
	var zero U
	base := zero.Base()

	units := make([]UnitInfo, 0, len(zero.Units()))
	for _, u := range zero.Units() {
		units = append(units, UnitInfo{
			Dimension:    u.Dimension(),
			Abbreviation: u.Abbreviation(),
			Ratio:        u.Ratio(),
			Base:         u == base,
		})
	}

	return dimension{
		name: base.Dimension(),
		parse: func(s string) (Quantity, error) {
			q, err := si.Parse[U](s)
			if err != nil {
				return nil, err
			}
			return q, nil
		},
		convert: func(q Quantity, abbr string) (Quantity, bool, error) {
			v, ok := q.(si.Quantity[U])
			if !ok {
				return nil, false, nil
			}
			u, err := si.ParseUnit[U](abbr)
			if err != nil {
				return nil, true, err
			}
			return v.Convert(u), true, nil
		},
		sum: func(qs []Quantity) (Quantity, bool) {
			values := make([]si.Quantity[U], 0, len(qs))
			for _, q := range qs {
				v, ok := q.(si.Quantity[U])
				if !ok {
					return nil, false
				}
				values = append(values, v)
			}
			return si.Sum(values...), true
		},
		unit: func(q Quantity) (string, bool) {
			v, ok := q.(si.Quantity[U])
			if !ok {
				return "", false
			}
			return v.Unit().Abbreviation(), true
		},
		units: units,
		has: func(abbr string) bool {
			_, err := si.ParseUnit[U](abbr)
			return err == nil
		},
	}
}

var dimensions = []dimension{
	describe[si.LengthUnit](),
	describe[si.AreaUnit](),
	describe[si.VolumeUnit](),
	describe[si.MassUnit](),
	describe[si.TimeUnit](),
	describe[si.VelocityUnit](),
}

func lookup(name si.Dimension) (dimension, bool) {
	for _, d := range dimensions {
		if d.name == name {
			return d, true
		}
	}
	return dimension{}, false
}

// Parse decodes "<number>[ ]<unit>" into the quantity of whichever
// dimension owns the unit.
func Parse(s string) (Quantity, error) {
	for _, d := range dimensions {
		q, err := d.parse(s)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, si.ErrUnknownUnit) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("eval: %w in %q", si.ErrUnknownUnit, strings.TrimSpace(s))
}

// UnitDimension reports the dimension that owns the unit abbreviation or
// alias abbr.
func UnitDimension(abbr string) (si.Dimension, bool) {
	for _, d := range dimensions {
		if d.has(abbr) {
			return d.name, true
		}
	}
	return "", false
}

// Convert expresses q in the unit named by abbr, which must belong to the
// dimension of q.
func Convert(q Quantity, abbr string) (Quantity, error) {
	d, ok := lookup(q.Dimension())
	if !ok {
		return nil, fmt.Errorf("eval: %w: convert %T", si.ErrUnsupportedOperation, q)
	}

	out, handled, err := d.convert(q, abbr)
	switch {
	case !handled:
		return nil, fmt.Errorf("eval: %w: convert %T", si.ErrUnsupportedOperation, q)
	case err == nil:
		return out, nil
	}

	if other, found := UnitDimension(abbr); found {
		return nil, fmt.Errorf("eval: convert %s to %s (%s): %w", q, abbr, other, si.ErrDimensionMismatch)
	}
	return nil, fmt.Errorf("eval: convert %s: %w", q, err)
}

// Abbreviation returns the abbreviation of the unit q is expressed in, or
// "" for a Quantity not created by package si.
func Abbreviation(q Quantity) string {
	if d, ok := lookup(q.Dimension()); ok {
		if abbr, ok := d.unit(q); ok {
			return abbr
		}
	}
	return ""
}

// Sum adds quantities of a single dimension. The result is in the base
// unit.
func Sum(qs ...Quantity) (Quantity, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("eval: sum: %w", si.ErrEmptyInput)
	}

	first := qs[0].Dimension()
	for _, q := range qs[1:] {
		if q.Dimension() != first {
			return nil, fmt.Errorf("eval: sum %s with %s: %w", first, q.Dimension(), si.ErrDimensionMismatch)
		}
	}

	if d, ok := lookup(first); ok {
		if total, ok := d.sum(qs); ok {
			return total, nil
		}
	}
	return nil, fmt.Errorf("eval: %w: sum of %s", si.ErrUnsupportedOperation, first)
}

// Units lists the units of the named dimensions in ascending ratio order,
// or of every dimension when none is named.
func Units(names ...si.Dimension) ([]UnitInfo, error) {
	if len(names) == 0 {
		names = si.Dimensions()
	}

	var out []UnitInfo
	for _, name := range names {
		d, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("eval: unknown dimension %q", name)
		}
		out = append(out, d.units...)
	}
	return out, nil
}
