package event

import "github.com/PKsong/MIDIKit/values"

// V is a protocol-agnostic value: it holds either a 7-bit (MIDI 1.0) or a
// 16-bit (MIDI 2.0) representation and converts losslessly to whichever
// width the caller needs, via values.Scale's Min-Center-Max rule. This is
// the payload type for NoteOn/NoteOff velocity, CC value, pressure amount,
// and any other channel-voice field whose width depends on the protocol
// version in play.
type V struct {
	bits int
	raw  uint32
}

// V7 wraps a 7-bit value as the native representation.
func V7(v values.U7) V { return V{bits: 7, raw: uint32(v)} }

// V16 wraps a 16-bit value as the native representation.
func V16(v values.U16) V { return V{bits: 16, raw: uint32(v)} }

// Bits reports which width this value was constructed with (its "native"
// protocol width): 7 or 16.
func (v V) Bits() int { return v.bits }

// AsU7 returns the value scaled to 7 bits, truncating if it was
// constructed at 16 bits.
func (v V) AsU7() values.U7 {
	if v.bits == 7 {
		return values.U7(v.raw)
	}
	return values.U7(values.Scale(v.raw, 16, 7))
}

// AsU16 returns the value scaled to 16 bits, upscaling via Min-Center-Max
// if it was constructed at 7 bits.
func (v V) AsU16() values.U16 {
	if v.bits == 16 {
		return values.U16(v.raw)
	}
	return values.U16(values.Scale(v.raw, 7, 16))
}

// WideValue is V's counterpart for the wider channel-voice payloads: pitch
// bend, RPN, and NRPN values, which are 14 bits in MIDI 1.0 and 32 bits in
// MIDI 2.0.
type WideValue struct {
	bits int
	raw  uint32
}

// WideValue14 wraps a 14-bit value as the native representation.
func WideValue14(v values.U14) WideValue { return WideValue{bits: 14, raw: uint32(v)} }

// WideValue32 wraps a 32-bit value as the native representation.
func WideValue32(v values.U32) WideValue { return WideValue{bits: 32, raw: uint32(v)} }

// Bits reports the native width: 14 or 32.
func (w WideValue) Bits() int { return w.bits }

// AsU14 returns the value scaled to 14 bits.
func (w WideValue) AsU14() values.U14 {
	if w.bits == 14 {
		return values.U14(w.raw)
	}
	return values.U14(values.Scale(w.raw, 32, 14))
}

// AsU32 returns the value scaled to 32 bits via Min-Center-Max.
func (w WideValue) AsU32() values.U32 {
	if w.bits == 32 {
		return values.U32(w.raw)
	}
	return values.U32(values.Scale(w.raw, 14, 32))
}

// ChangeKind distinguishes an absolute RPN/NRPN value from a relative
// (increment/decrement) one. MIDI 2.0 carries this as a bit in the status
// byte; it is preserved through round-trip even though MIDI 1.0 hosts
// generally ignore the distinction.
type ChangeKind uint8

const (
	ChangeAbsolute ChangeKind = iota
	ChangeRelative
)
