// Package smf implements the Standard MIDI File codec: chunked big-endian
// header parsing, VLQ delta-times, the meta-event catalogue, and
// running-status-aware track decode/encode. Unlike the midi1
// byte-stream codec, this package applies running status itself: an
// SMF track is a closed, seekable byte region rather than a live wire, so
// the encoder is free to omit repeated status bytes and the decoder must
// expect that.
package smf

import "github.com/PKsong/MIDIKit/event"

// MidiFile is a fully parsed Standard MIDI File: header fields plus one
// event list per track, in file order.
type MidiFile struct {
	Format   uint16
	Division Division
	Tracks   [][]TrackEvent
}

// Division is the MThd division field: either ticks per quarter note, or
// an SMPTE frame rate and ticks-per-frame resolution.
type Division struct {
	SMPTE           bool
	TicksPerQuarter uint16 // meaningful when !SMPTE
	FramesPerSecond int8   // -24, -25, -29 (drop-frame), or -30; meaningful when SMPTE
	TicksPerFrame   uint8  // meaningful when SMPTE
}

func decodeDivision(raw uint16) Division {
	if raw&0x8000 != 0 {
		return Division{
			SMPTE:           true,
			FramesPerSecond: int8(int16(raw) >> 8),
			TicksPerFrame:   uint8(raw),
		}
	}
	return Division{TicksPerQuarter: raw & 0x7FFF}
}

func (d Division) encode() uint16 {
	if d.SMPTE {
		return uint16(uint8(d.FramesPerSecond))<<8 | uint16(d.TicksPerFrame)
	}
	return d.TicksPerQuarter & 0x7FFF
}

// TrackEvent is implemented by every event a track can contain: a channel
// message, a meta-event, or a SysEx message, each carrying its own
// delta-time in MIDI ticks since the previous event in the same track.
type TrackEvent interface {
	DeltaTime() uint32
}

// ChannelMessage wraps a channel-voice event decoded from the track's
// byte stream (running status already resolved); system-common and
// real-time status bytes are not accepted inside a track.
type ChannelMessage struct {
	Delta   uint32
	Message event.Event
}

func (e ChannelMessage) DeltaTime() uint32 { return e.Delta }

// SysEx is a track-level SysEx message, framed as either F0 (a normal
// message, implicitly terminated) or F7 (a raw/escape continuation, used
// to split a long message or carry bytes with no implied framing).
type SysEx struct {
	Delta  uint32
	Escape bool
	Data   []byte
}

func (e SysEx) DeltaTime() uint32 { return e.Delta }

// TextKind discriminates the seven MIDI text meta-event types, which
// differ only in their meta-type byte.
type TextKind uint8

const (
	TextGeneric TextKind = iota
	TextCopyright
	TextTrackName
	TextInstrumentName
	TextLyric
	TextMarker
	TextCuePoint
)

// Text is one of the seven text meta-events (0x01-0x07).
type Text struct {
	Delta uint32
	Kind  TextKind
	Value string
}

func (e Text) DeltaTime() uint32 { return e.Delta }

// SequenceNumber is the 0x00 meta-event, identifying a track's place in a
// pattern (format 2) or the sequence as a whole (formats 0/1).
type SequenceNumber struct {
	Delta  uint32
	Number uint16
}

func (e SequenceNumber) DeltaTime() uint32 { return e.Delta }

// ChannelPrefix (0x20) associates the following meta/SysEx events with a
// specific MIDI channel.
type ChannelPrefix struct {
	Delta   uint32
	Channel uint8
}

func (e ChannelPrefix) DeltaTime() uint32 { return e.Delta }

// PortPrefix (0x21) associates the following meta/SysEx events with a
// specific output port.
type PortPrefix struct {
	Delta uint32
	Port  uint8
}

func (e PortPrefix) DeltaTime() uint32 { return e.Delta }

// EndOfTrack (0x2F) is the mandatory final event of every track.
type EndOfTrack struct {
	Delta uint32
}

func (e EndOfTrack) DeltaTime() uint32 { return e.Delta }

// Tempo (0x51) sets the number of microseconds per quarter note.
type Tempo struct {
	Delta                  uint32
	MicrosecondsPerQuarter uint32
}

func (e Tempo) DeltaTime() uint32 { return e.Delta }

// SMPTEOffset (0x54) records the SMPTE time a track is to start at.
type SMPTEOffset struct {
	Delta    uint32
	Hour     uint8
	Minute   uint8
	Second   uint8
	Frame    uint8
	SubFrame uint8
}

func (e SMPTEOffset) DeltaTime() uint32 { return e.Delta }

// TimeSignature (0x58) sets the numerator, denominator (as a power of
// two), MIDI clocks per metronome click, and 32nd-notes per quarter note.
type TimeSignature struct {
	Delta                       uint32
	Numerator                   uint8
	DenominatorPower            uint8
	ClocksPerMetronomeClick     uint8
	ThirtySecondNotesPerQuarter uint8
}

func (e TimeSignature) DeltaTime() uint32 { return e.Delta }

// KeySignature (0x59) sets the key as a signed sharps/flats count and a
// major/minor flag.
type KeySignature struct {
	Delta       uint32
	SharpsFlats int8
	Minor       bool
}

func (e KeySignature) DeltaTime() uint32 { return e.Delta }

// XMFPatchTypePrefix (0x60) marks the General MIDI patch type (General
// MIDI, GM2, DLS, or an XMF-defined custom type) in effect for the
// instruments that follow, per the XMF/SMF patch-type-prefix extension.
type XMFPatchTypePrefix struct {
	Delta     uint32
	PatchType byte
}

func (e XMFPatchTypePrefix) DeltaTime() uint32 { return e.Delta }

// SequencerSpecific (0x7F) carries manufacturer-specific data, opaque to
// this codec.
type SequencerSpecific struct {
	Delta uint32
	Data  []byte
}

func (e SequencerSpecific) DeltaTime() uint32 { return e.Delta }

// UnrecognizedMeta preserves a meta-event of a type this codec does not
// interpret, so a parse/encode round trip never silently drops bytes.
type UnrecognizedMeta struct {
	Delta uint32
	Type  byte
	Data  []byte
}

func (e UnrecognizedMeta) DeltaTime() uint32 { return e.Delta }
