package event

import "github.com/PKsong/MIDIKit/values"

// NoteAttributeType identifies the kind of per-note attribute data carried
// alongside a MIDI 2.0 NoteOn/NoteOff, per the UMP MIDI 2.0 Channel Voice
// message definition.
type NoteAttributeType uint8

const (
	NoteAttributeNone                 NoteAttributeType = 0x00
	NoteAttributeManufacturerSpecific NoteAttributeType = 0x01
	NoteAttributeProfileSpecific      NoteAttributeType = 0x02
	NoteAttributePitch7_9             NoteAttributeType = 0x03
)

// NoteAttribute is the optional attribute-type/attribute-data pair a
// MIDI 2.0 NoteOn or NoteOff may carry.
type NoteAttribute struct {
	Type NoteAttributeType
	Data values.U16
}

// NoteOn is a note-on channel-voice event.
type NoteOn struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Velocity     V
	Attribute    *NoteAttribute
}

func (e NoteOn) Kind() Kind         { return KindNoteOn }
func (e NoteOn) Group() values.U4   { return e.GroupValue }
func (e NoteOn) Channel() values.U4 { return e.ChannelValue }

// NoteOff is a note-off channel-voice event. A MIDI 1.0 NoteOn with
// velocity 0 is normalised to this on decode unless the decoder is
// configured to skip that translation.
type NoteOff struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Velocity     V
	Attribute    *NoteAttribute
}

func (e NoteOff) Kind() Kind         { return KindNoteOff }
func (e NoteOff) Group() values.U4   { return e.GroupValue }
func (e NoteOff) Channel() values.U4 { return e.ChannelValue }

// PerNoteControllerKind distinguishes a MIDI 2.0 registered per-note
// controller from an assignable (manufacturer/profile defined) one.
type PerNoteControllerKind uint8

const (
	PerNoteControllerRegistered PerNoteControllerKind = iota
	PerNoteControllerAssignable
)

// PerNoteController addresses one of the 255 per-note controllers in
// either the registered or assignable index space.
type PerNoteController struct {
	Kind  PerNoteControllerKind
	Index uint8
}

// NoteCC is a MIDI 2.0-only per-note continuous controller event.
type NoteCC struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Controller   PerNoteController
	Value        values.U32
}

func (e NoteCC) Kind() Kind         { return KindNoteCC }
func (e NoteCC) Group() values.U4   { return e.GroupValue }
func (e NoteCC) Channel() values.U4 { return e.ChannelValue }

// NotePitchBend is a MIDI 2.0-only per-note pitch bend event.
type NotePitchBend struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Value        values.U32
}

func (e NotePitchBend) Kind() Kind         { return KindNotePitchBend }
func (e NotePitchBend) Group() values.U4   { return e.GroupValue }
func (e NotePitchBend) Channel() values.U4 { return e.ChannelValue }

// NotePressure is a MIDI 2.0-only per-note (polyphonic key) pressure
// event.
type NotePressure struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Amount       V
}

func (e NotePressure) Kind() Kind         { return KindNotePressure }
func (e NotePressure) Group() values.U4   { return e.GroupValue }
func (e NotePressure) Channel() values.U4 { return e.ChannelValue }

// NoteManagement carries the MIDI 2.0 per-note management options: detach
// (per-note controllers stop following the channel default) and reset
// (per-note controllers reset to default).
type NoteManagement struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Note         values.U7
	Detach       bool
	Reset        bool
}

func (e NoteManagement) Kind() Kind         { return KindNoteManagement }
func (e NoteManagement) Group() values.U4   { return e.GroupValue }
func (e NoteManagement) Channel() values.U4 { return e.ChannelValue }

// CC is a control-change event.
type CC struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Controller   Controller
	Value        V
}

func (e CC) Kind() Kind         { return KindCC }
func (e CC) Group() values.U4   { return e.GroupValue }
func (e CC) Channel() values.U4 { return e.ChannelValue }

// ProgramChange is a program-change event, optionally preceded by a bank
// select (CC 0/32) pair folded into Bank.
type ProgramChange struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Program      values.U7
	Bank         *values.U14
}

func (e ProgramChange) Kind() Kind         { return KindProgramChange }
func (e ProgramChange) Group() values.U4   { return e.GroupValue }
func (e ProgramChange) Channel() values.U4 { return e.ChannelValue }

// PitchBend is a channel pitch bend event.
type PitchBend struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Value        WideValue
}

func (e PitchBend) Kind() Kind         { return KindPitchBend }
func (e PitchBend) Group() values.U4   { return e.GroupValue }
func (e PitchBend) Channel() values.U4 { return e.ChannelValue }

// Pressure is a channel (monophonic) pressure event.
type Pressure struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Amount       V
}

func (e Pressure) Kind() Kind         { return KindPressure }
func (e Pressure) Group() values.U4   { return e.GroupValue }
func (e Pressure) Channel() values.U4 { return e.ChannelValue }

// RegisteredParameter is an RPN MSB/LSB parameter-number pair. The MMA
// registry only defines a handful of these; everything else decodes to a
// RegisteredParameter carrying its raw MSB/LSB for fidelity.
type RegisteredParameter values.Pair7

var (
	RPNPitchBendSensitivity = RegisteredParameter{MSB: 0x00, LSB: 0x00}
	RPNChannelFineTuning    = RegisteredParameter{MSB: 0x00, LSB: 0x01}
	RPNChannelCoarseTuning  = RegisteredParameter{MSB: 0x00, LSB: 0x02}
	RPNTuningProgramChange  = RegisteredParameter{MSB: 0x00, LSB: 0x03}
	RPNTuningBankSelect     = RegisteredParameter{MSB: 0x00, LSB: 0x04}
	RPNModulationDepthRange = RegisteredParameter{MSB: 0x00, LSB: 0x05}
	RPNMPEConfiguration     = RegisteredParameter{MSB: 0x00, LSB: 0x06}
	RPNNull                 = RegisteredParameter{MSB: 0x7F, LSB: 0x7F}
)

// RPN is a Registered Parameter Number event: the result of combining one
// MIDI 1.0 RPN MSB/LSB selection pair with its data-entry MSB/LSB pair
// into a single logical transaction, or a native MIDI 2.0 UMP RPN
// message.
type RPN struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Parameter    RegisteredParameter
	Value        WideValue
	Change       ChangeKind
}

func (e RPN) Kind() Kind         { return KindRPN }
func (e RPN) Group() values.U4   { return e.GroupValue }
func (e RPN) Channel() values.U4 { return e.ChannelValue }

// NRPN is a Non-Registered Parameter Number event, structurally identical
// to RPN but addressed by an unregistered (manufacturer/patch-specific)
// MSB/LSB pair.
type NRPN struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Parameter    values.Pair7
	Value        WideValue
	Change       ChangeKind
}

func (e NRPN) Kind() Kind         { return KindNRPN }
func (e NRPN) Group() values.U4   { return e.GroupValue }
func (e NRPN) Channel() values.U4 { return e.ChannelValue }
