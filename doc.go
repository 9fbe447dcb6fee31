// Package measure provides typed physical quantities for Go applications.
//
// A quantity is a float64 magnitude tagged with a unit. The unit's dimension
// is part of the static type, so adding a Length to a Mass, or passing a
// Time where a Velocity is expected, does not compile. It provides:
//
//   - Length, Area, Volume, Mass, Time and Velocity with their common units
//   - Conversion between any two units of a dimension via its base unit
//   - Same-dimension arithmetic normalized to the base unit
//   - A fixed set of cross-dimension operators (Length × Length = Area, ...)
//   - Parsing and display in the compact "3km" form
//   - JSON, text, YAML, BSON and SQL codecs
//
// The types live in package si; this package re-exports them so that most
// callers need a single import.
//
// # Quick Start
//
//	import "github.com/xraph/measure"
//
//	trip := measure.Kilometers(3).Add(measure.Meters(250))
//	fmt.Println(trip) // 3250m
//
//	fmt.Println(trip.Convert(measure.Kilometer)) // 3.25km
//
// # Core Concepts
//
// Every dimension has one base unit with ratio 1. A quantity's base
// magnitude is its magnitude times the ratio of its unit:
//
//	measure.Kilometers(3).BaseMagnitude() // 3000
//
// Add and Sub accept operands in any unit of the same dimension and always
// return the result in the base unit:
//
//	measure.Kilometers(1).Add(measure.Centimeters(50)) // 1000.5m
//
// Cross-dimension operators are functions named after their operands:
//
//	area := measure.MulLengthLength(measure.Meters(2), measure.Meters(3)) // 6m²
//	speed := measure.DivLengthTime(measure.Kilometers(100), measure.Hours(1))
//	speed.Convert(measure.KilometerPerHour) // 100km/h
//
// Arithmetic never returns errors. Dividing by a zero quantity yields ±Inf
// or NaN as IEEE-754 prescribes.
//
// # Parsing and Encoding
//
// Quantities parse from the same form they print in:
//
//	d, err := measure.ParseLength("2.5 km")
//
// A Quantity encodes to JSON as an object carrying the magnitude, unit,
// dimension and display string, and decodes from that object or from the
// display string alone. Text, YAML, BSON and database/sql encodings are
// also provided.
//
// # Command Line
//
// cmd/measure wraps the library in a CLI:
//
//	measure convert 90km/h m/s
//	measure calc 100km / 2h
//	measure sum 1km 250m 80cm
//	measure units length
package measure
