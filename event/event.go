// Package event defines the MIDIKit event model: a tagged sum type over
// every channel-voice, system-common, system-real-time, system-exclusive,
// and utility message defined by MIDI 1.0 and MIDI 2.0.
//
// The source library this package is modelled after uses class-based
// polymorphism with a runtime type hierarchy for events; here that
// collapses into a single Kind discriminant plus pattern matching (a type
// switch) over concrete structs. No variant allocates beyond the struct
// itself; SysEx payloads are the only variable-length fields and are
// carried as plain byte slices.
package event

import "github.com/PKsong/MIDIKit/values"

// Kind discriminates the concrete type of an Event without a type switch,
// for fast dispatch in filter.ByType and similar.
type Kind int

const (
	KindNoteOn Kind = iota
	KindNoteOff
	KindNoteCC
	KindNotePitchBend
	KindNotePressure
	KindNoteManagement
	KindCC
	KindProgramChange
	KindPitchBend
	KindPressure
	KindRPN
	KindNRPN
	KindTimecodeQuarterFrame
	KindSongPositionPointer
	KindSongSelect
	KindTuneRequest
	KindTimingClock
	KindStart
	KindContinue
	KindStop
	KindActiveSensing
	KindSystemReset
	KindSysEx7
	KindUniversalSysEx7
	KindSysEx8
	KindUniversalSysEx8
	KindNoOp
	KindJRClock
	KindJRTimestamp
)

// Event is implemented by every concrete event type. Group is the UMP
// group the event belongs to; it is zero for events that arrived over a
// MIDI 1.0 byte stream or inside a Standard MIDI File, where groups do not
// exist.
type Event interface {
	Kind() Kind
	Group() values.U4
}

// ChannelEvent is implemented by every Event that additionally carries a
// channel number: the channel-voice family.
type ChannelEvent interface {
	Event
	Channel() values.U4
}
