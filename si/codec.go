package si

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

type jsonQuantity struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Dimension Dimension `json:"dimension,omitempty"`
	Display   string    `json:"display,omitempty"`
}

// MarshalJSON implements json.Marshaler.
//
//	{"value":3,"unit":"km","dimension":"length","display":"3km"}
func (q Quantity[U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonQuantity{
		Value:     q.magnitude,
		Unit:      q.unit.Abbreviation(),
		Dimension: q.Dimension(),
		Display:   q.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the object form
// produced by MarshalJSON and the display string form ("3km").
func (q *Quantity[U]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return q.UnmarshalText([]byte(s))
	}

	var raw jsonQuantity
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return q.decode(raw.Value, raw.Unit, raw.Dimension)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quantity[U]) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quantity[U]) UnmarshalText(data []byte) error {
	parsed, err := Parse[U](string(data))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler as the display string.
func (q Quantity[U]) MarshalYAML() (any, error) {
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts a scalar in
// display form or a mapping with value and unit keys.
func (q *Quantity[U]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return q.UnmarshalText([]byte(node.Value))
	case yaml.MappingNode:
		var raw struct {
			Value     float64   `yaml:"value"`
			Unit      string    `yaml:"unit"`
			Dimension Dimension `yaml:"dimension"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return q.decode(raw.Value, raw.Unit, raw.Dimension)
	default:
		return fmt.Errorf("%w: yaml node at line %d is neither scalar nor mapping", ErrInvalidEncoding, node.Line)
	}
}

type bsonQuantity struct {
	Value float64 `bson:"value"`
	Unit  string  `bson:"unit"`
}

// MarshalBSON implements bson.Marshaler as an embedded document
// {value, unit}.
func (q Quantity[U]) MarshalBSON() ([]byte, error) {
	return bson.Marshal(bsonQuantity{Value: q.magnitude, Unit: q.unit.Abbreviation()})
}

// UnmarshalBSON implements bson.Unmarshaler.
func (q *Quantity[U]) UnmarshalBSON(data []byte) error {
	var raw bsonQuantity
	if err := bson.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return q.decode(raw.Value, raw.Unit, "")
}

// Value implements driver.Valuer. Quantities are stored as their display
// string.
func (q Quantity[U]) Value() (driver.Value, error) {
	return q.String(), nil
}

// Scan implements sql.Scanner. NULL leaves q unchanged.
func (q *Quantity[U]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return q.UnmarshalText([]byte(v))
	case []byte:
		return q.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into %s", ErrInvalidEncoding, src, q.Dimension())
	}
}

// decode sets q from a magnitude and unit abbreviation. A non-empty dim
// must match U's dimension.
func (q *Quantity[U]) decode(magnitude float64, abbr string, dim Dimension) error {
	var zero U
	if dim != "" && dim != zero.Dimension() {
		return fmt.Errorf("%w: got %s, want %s", ErrDimensionMismatch, dim, zero.Dimension())
	}

	unit, err := ParseUnit[U](abbr)
	if err != nil {
		return err
	}

	*q = New(unit, magnitude)
	return nil
}
