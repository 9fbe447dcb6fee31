package si

import "time"

// TimeUnit is a unit of Time. The zero value is Second.
type TimeUnit uint8

// Time units.
const (
	Second TimeUnit = iota
	Millisecond
	Minute
	Hour
	Day
)

var timeUnits = [...]unitSpec{
	Second:      {ratio: 1, abbr: "s", aliases: []string{"sec"}},
	Millisecond: {ratio: 1e-3, abbr: "ms"},
	Minute:      {ratio: 60, abbr: "min"},
	Hour:        {ratio: 3600, abbr: "h", aliases: []string{"hr"}},
	Day:         {ratio: 86400, abbr: "d", aliases: []string{"day"}},
}

func (u TimeUnit) Dimension() Dimension { return DimensionTime }
func (u TimeUnit) Ratio() float64       { return timeUnits[u].ratio }
func (u TimeUnit) Abbreviation() string { return timeUnits[u].abbr }
func (u TimeUnit) String() string       { return u.Abbreviation() }
func (u TimeUnit) aliases() []string    { return timeUnits[u].aliases }
func (TimeUnit) Base() TimeUnit         { return Second }
func (TimeUnit) Units() []TimeUnit {
	return []TimeUnit{Millisecond, Second, Minute, Hour, Day}
}

// Time is an elapsed span of time.
type Time = Quantity[TimeUnit]

// Milliseconds returns a Time of v milliseconds.
func Milliseconds(v float64) Time { return New(Millisecond, v) }

// Seconds returns a Time of v seconds.
func Seconds(v float64) Time { return New(Second, v) }

// Minutes returns a Time of v minutes.
func Minutes(v float64) Time { return New(Minute, v) }

// Hours returns a Time of v hours.
func Hours(v float64) Time { return New(Hour, v) }

// Days returns a Time of v days.
func Days(v float64) Time { return New(Day, v) }

// TimeOf returns d as a Time in seconds.
func TimeOf(d time.Duration) Time { return Seconds(d.Seconds()) }

// DurationOf returns t as a time.Duration, truncated to whole nanoseconds.
// Magnitudes outside the range of time.Duration do not saturate.
func DurationOf(t Time) time.Duration {
	return time.Duration(t.BaseMagnitude() * float64(time.Second))
}
