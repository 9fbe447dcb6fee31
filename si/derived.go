package si

// Cross-dimension operators. Each computes on base magnitudes and returns
// the base unit of the result dimension:
//
//	Length × Length   = Area
//	Length × Area     = Volume
//	Area   × Length   = Volume
//	Area   ÷ Length   = Length
//	Volume ÷ Length   = Area
//	Volume ÷ Area     = Length
//	Length ÷ Time     = Velocity
//	Length ÷ Velocity = Time
//	Velocity × Time   = Length

// MulLengthLength returns the Area spanned by a and b.
func MulLengthLength(a, b Length) Area {
	return inBase[AreaUnit](a.BaseMagnitude() * b.BaseMagnitude())
}

// MulLengthArea returns the Volume of base a extruded along l.
func MulLengthArea(l Length, a Area) Volume {
	return inBase[VolumeUnit](l.BaseMagnitude() * a.BaseMagnitude())
}

// MulAreaLength returns the Volume of base a extruded along l.
func MulAreaLength(a Area, l Length) Volume {
	return inBase[VolumeUnit](a.BaseMagnitude() * l.BaseMagnitude())
}

// DivAreaLength returns the side that, multiplied by l, spans a.
func DivAreaLength(a Area, l Length) Length {
	return inBase[LengthUnit](a.BaseMagnitude() / l.BaseMagnitude())
}

// DivVolumeLength returns the cross-section of v along l.
func DivVolumeLength(v Volume, l Length) Area {
	return inBase[AreaUnit](v.BaseMagnitude() / l.BaseMagnitude())
}

// DivVolumeArea returns the height of v over base a.
func DivVolumeArea(v Volume, a Area) Length {
	return inBase[LengthUnit](v.BaseMagnitude() / a.BaseMagnitude())
}

// DivLengthTime returns the Velocity covering l in t.
func DivLengthTime(l Length, t Time) Velocity {
	return inBase[VelocityUnit](l.BaseMagnitude() / t.BaseMagnitude())
}

// DivLengthVelocity returns the Time needed to cover l at v.
func DivLengthVelocity(l Length, v Velocity) Time {
	return inBase[TimeUnit](l.BaseMagnitude() / v.BaseMagnitude())
}

// MulVelocityTime returns the Length covered at v during t.
func MulVelocityTime(v Velocity, t Time) Length {
	return inBase[LengthUnit](v.BaseMagnitude() * t.BaseMagnitude())
}
