package cdis

import "math"

// FieldCodec carries the four fixed-point transform constants for one leaf
// field, kept as a separate descriptor from the data it governs per
// spec.md §9's design note ("treat the codec as a separate object from the
// data"). It mirrors the Codec trait's associated constants in
// cdis-assemble/src/codec.rs, expressed here as a value rather than a
// trait because Go has no associated-constant equivalent.
type FieldCodec struct {
	Scaling       float32
	Scaling2      float32
	Conversion    float32
	Normalisation float32
}

// Encode applies wire = round((value - conversion) * scaling * scaling2 * normalisation).
// A zero FieldCodec (all constants zero) applies no transform; the value is
// only rounded to the nearest integer (half away from zero).
func (c FieldCodec) Encode(value float64) int64 {
	if c.isIdentity() {
		return int64(roundHalfAwayFromZero(value))
	}
	transformed := (value - float64(c.Conversion)) * float64(nonZero(c.Scaling)) *
		float64(nonZero(c.Scaling2)) * float64(nonZero(c.Normalisation))
	return int64(roundHalfAwayFromZero(transformed))
}

// Decode applies the inverse transform of Encode.
func (c FieldCodec) Decode(wire int64) float64 {
	if c.isIdentity() {
		return float64(wire)
	}
	return float64(wire)/(float64(nonZero(c.Scaling))*float64(nonZero(c.Scaling2))*float64(nonZero(c.Normalisation))) +
		float64(c.Conversion)
}

func (c FieldCodec) isIdentity() bool {
	return c.Scaling == 0 && c.Scaling2 == 0 && c.Conversion == 0 && c.Normalisation == 0
}

// nonZero treats an unset (zero) constant as a multiplicative identity (1),
// since "any subset may be zero" per spec.md §3.1 describes omission, not a
// literal zero multiplier.
func nonZero(f float32) float32 {
	if f == 0 {
		return 1
	}
	return f
}

// roundHalfAwayFromZero resolves spec.md §8 scenario S2's concrete
// arithmetic (-42.5 -> -43) in favor of round-half-away-from-zero rather
// than the banker's-rounding behavior the spec's prose names; see
// DESIGN.md's open-question resolution.
func roundHalfAwayFromZero(v float64) float64 {
	return math.Round(v)
}
