// Package values implements the validated unsigned integer types that make
// up every MIDI event payload: 4-, 7-, 14-, 16-, 25-, and 32-bit widths.
// Each type is always representable in its declared width; the "unchecked"
// constructor panics on overflow, and Try/Clamping/Wrapping/Truncating
// siblings cover every other construction need without silent data loss
// going unrepresented in the API.
package values

import "github.com/PKsong/MIDIKit/midierr"

// U4 is a 4-bit unsigned integer, 0..15. Used for UMP group and channel.
type U4 uint8

const u4Max = 0xF

// NewU4 panics if raw exceeds the 4-bit range.
func NewU4(raw uint8) U4 {
	if raw > u4Max {
		panic(midierr.NewOutOfRange("U4", int64(raw), u4Max))
	}
	return U4(raw)
}

// NewU4Clamping saturates raw to the 4-bit range.
func NewU4Clamping(raw uint8) U4 {
	if raw > u4Max {
		return U4(u4Max)
	}
	return U4(raw)
}

// NewU4Wrapping reduces raw modulo 2^4.
func NewU4Wrapping(raw uint8) U4 { return U4(raw & u4Max) }

// NewU4Truncating keeps only the low 4 bits of raw.
func NewU4Truncating(raw uint8) U4 { return U4(raw & u4Max) }

// TryNewU4 returns (0, false) if raw is out of range.
func TryNewU4(raw uint8) (U4, bool) {
	if raw > u4Max {
		return 0, false
	}
	return U4(raw), true
}

// Value returns the underlying integer widened to uint32.
func (v U4) Value() uint32 { return uint32(v) }

// Add wraps modulo 2^4, closing arithmetic within the value's width.
func (v U4) Add(o U4) U4 { return U4((uint8(v) + uint8(o)) & u4Max) }

// U7 is a 7-bit unsigned integer, 0..127. The most common MIDI 1.0 data
// byte width: notes, velocities, controller numbers and values, programs.
type U7 uint8

const u7Max = 0x7F

// NewU7 panics if raw exceeds the 7-bit range.
func NewU7(raw uint8) U7 {
	if raw > u7Max {
		panic(midierr.NewOutOfRange("U7", int64(raw), u7Max))
	}
	return U7(raw)
}

// NewU7Clamping saturates raw to the 7-bit range.
func NewU7Clamping(raw uint8) U7 {
	if raw > u7Max {
		return U7(u7Max)
	}
	return U7(raw)
}

// NewU7Wrapping reduces raw modulo 2^7.
func NewU7Wrapping(raw uint8) U7 { return U7(raw & u7Max) }

// NewU7Truncating keeps only the low 7 bits of raw.
func NewU7Truncating(raw uint8) U7 { return U7(raw & u7Max) }

// TryNewU7 returns (0, false) if raw is out of range.
func TryNewU7(raw uint8) (U7, bool) {
	if raw > u7Max {
		return 0, false
	}
	return U7(raw), true
}

// Value returns the underlying integer widened to uint32.
func (v U7) Value() uint32 { return uint32(v) }

// Add wraps modulo 2^7.
func (v U7) Add(o U7) U7 { return U7((uint8(v) + uint8(o)) & u7Max) }

// Unit returns the value as a fraction of the maximum representable value,
// in [0.0, 1.0].
func (v U7) Unit() float64 { return float64(v) / float64(u7Max) }

// U7FromUnit maps a [0.0, 1.0] fraction onto the 7-bit range, rounding to
// the nearest integer and clamping the input fraction first.
func U7FromUnit(f float64) U7 {
	return U7(unitToRaw(f, u7Max))
}

// U14 is a 14-bit unsigned integer, 0..16383: pitch bend values, song
// position pointers, RPN/NRPN parameter-and-value pairs after MSB/LSB
// combination.
type U14 uint16

const u14Max = 0x3FFF

// NewU14 panics if raw exceeds the 14-bit range.
func NewU14(raw uint16) U14 {
	if raw > u14Max {
		panic(midierr.NewOutOfRange("U14", int64(raw), u14Max))
	}
	return U14(raw)
}

// NewU14Clamping saturates raw to the 14-bit range.
func NewU14Clamping(raw uint16) U14 {
	if raw > u14Max {
		return U14(u14Max)
	}
	return U14(raw)
}

// NewU14Wrapping reduces raw modulo 2^14.
func NewU14Wrapping(raw uint16) U14 { return U14(raw & u14Max) }

// NewU14Truncating keeps only the low 14 bits of raw.
func NewU14Truncating(raw uint16) U14 { return U14(raw & u14Max) }

// TryNewU14 returns (0, false) if raw is out of range.
func TryNewU14(raw uint16) (U14, bool) {
	if raw > u14Max {
		return 0, false
	}
	return U14(raw), true
}

// Value returns the underlying integer widened to uint32.
func (v U14) Value() uint32 { return uint32(v) }

// Add wraps modulo 2^14.
func (v U14) Add(o U14) U14 { return U14((uint16(v) + uint16(o)) & u14Max) }

// Unit returns the value as a fraction in [0.0, 1.0].
func (v U14) Unit() float64 { return float64(v) / float64(u14Max) }

// Pair7 aggregates a 7-bit MSB and LSB, the wire representation of a U14
// across two MIDI 1.0 data bytes.
type Pair7 struct {
	MSB U7
	LSB U7
}

// ToU14 combines the pair into value = (msb << 7) | lsb.
func (p Pair7) ToU14() U14 {
	return U14(uint16(p.MSB)<<7 | uint16(p.LSB))
}

// FromPair builds a U14 from a 7-bit MSB/LSB pair. Equivalent to
// Pair7{msb, lsb}.ToU14().
func FromPair(msb, lsb U7) U14 {
	return Pair7{MSB: msb, LSB: lsb}.ToU14()
}

// IntoPair splits the U14 back into its 7-bit MSB/LSB pair.
func (v U14) IntoPair() Pair7 {
	return Pair7{
		MSB: U7((uint16(v) >> 7) & u7Max),
		LSB: U7(uint16(v) & u7Max),
	}
}

// U16 is an unconstrained 16-bit unsigned integer: MIDI 2.0 velocity,
// pressure, and JR Clock/Timestamp payloads.
type U16 uint16

// NewU16 never panics: every uint16 is representable.
func NewU16(raw uint16) U16 { return U16(raw) }

// Value returns the underlying integer widened to uint32.
func (v U16) Value() uint32 { return uint32(v) }

// Unit returns the value as a fraction in [0.0, 1.0].
func (v U16) Unit() float64 { return float64(v) / float64(0xFFFF) }

// U16FromUnit maps a [0.0, 1.0] fraction onto the 16-bit range.
func U16FromUnit(f float64) U16 { return U16(unitToRaw(f, 0xFFFF)) }

// U25 is a 25-bit unsigned integer. MIDI 2.0 uses widths like this for a
// handful of niche fields (e.g. certain UMP flex-data payload counts); it
// is carried here for completeness of the declared value-type family.
type U25 uint32

const u25Max = 0x1FFFFFF

// NewU25 panics if raw exceeds the 25-bit range.
func NewU25(raw uint32) U25 {
	if raw > u25Max {
		panic(midierr.NewOutOfRange("U25", int64(raw), u25Max))
	}
	return U25(raw)
}

// NewU25Clamping saturates raw to the 25-bit range.
func NewU25Clamping(raw uint32) U25 {
	if raw > u25Max {
		return U25(u25Max)
	}
	return U25(raw)
}

// NewU25Wrapping reduces raw modulo 2^25.
func NewU25Wrapping(raw uint32) U25 { return U25(raw & u25Max) }

// NewU25Truncating keeps only the low 25 bits of raw.
func NewU25Truncating(raw uint32) U25 { return U25(raw & u25Max) }

// TryNewU25 returns (0, false) if raw is out of range.
func TryNewU25(raw uint32) (U25, bool) {
	if raw > u25Max {
		return 0, false
	}
	return U25(raw), true
}

// Value returns the underlying integer widened to uint32.
func (v U25) Value() uint32 { return uint32(v) }

// U32 is an unconstrained 32-bit unsigned integer: MIDI 2.0 pitch bend and
// per-note pitch bend payloads.
type U32 uint32

// NewU32 never panics: every uint32 is representable.
func NewU32(raw uint32) U32 { return U32(raw) }

// Value returns the underlying integer.
func (v U32) Value() uint32 { return uint32(v) }

// Unit returns the value as a fraction in [0.0, 1.0].
func (v U32) Unit() float64 { return float64(v) / float64(0xFFFFFFFF) }

// U32FromUnit maps a [0.0, 1.0] fraction onto the 32-bit range.
func U32FromUnit(f float64) U32 { return U32(unitToRaw64(f, 0xFFFFFFFF)) }

func unitToRaw(f float64, max uint32) uint32 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return max
	}
	return uint32(f*float64(max) + 0.5)
}

func unitToRaw64(f float64, max uint64) uint32 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return uint32(max)
	}
	return uint32(f*float64(max) + 0.5)
}
