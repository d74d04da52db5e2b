// Package midi1 implements the MIDI 1.0 byte-stream codec: status-byte
// encoding/decoding, channel-voice and system framing, and the explicit
// decoder state machine below: Idle, Data1Expected, Data2Expected,
// SysExBody. Running status is never emitted by this layer (the SMF
// codec may impose it explicitly at its own layer).
package midi1

import "github.com/PKsong/MIDIKit/values"

const (
	statusNoteOff         = 0x80
	statusNoteOn          = 0x90
	statusPolyPressure    = 0xA0
	statusCC              = 0xB0
	statusProgramChange   = 0xC0
	statusChannelPressure = 0xD0
	statusPitchBend       = 0xE0

	statusSysExStart    = 0xF0
	statusMTCQuarter    = 0xF1
	statusSongPosition  = 0xF2
	statusSongSelect    = 0xF3
	statusUndefined1    = 0xF4
	statusUndefined2    = 0xF5
	statusTuneRequest   = 0xF6
	statusSysExEnd      = 0xF7
	statusTimingClock   = 0xF8
	statusUndefinedRT1  = 0xF9
	statusStart         = 0xFA
	statusContinue      = 0xFB
	statusStop          = 0xFC
	statusUndefinedRT2  = 0xFD
	statusActiveSensing = 0xFE
	statusSystemReset   = 0xFF
)

// dataByteCount returns how many data bytes follow a channel-voice or
// system-common status byte. SysEx is variable-length and handled
// separately; real-time bytes (0xF8-0xFF) always carry zero data bytes
// and are handled out of band.
func dataByteCount(status byte) (int, bool) {
	switch status & 0xF0 {
	case statusNoteOff, statusNoteOn, statusPolyPressure, statusCC, statusPitchBend:
		return 2, true
	case statusProgramChange, statusChannelPressure:
		return 1, true
	}
	switch status {
	case statusMTCQuarter, statusSongSelect:
		return 1, true
	case statusSongPosition:
		return 2, true
	case statusTuneRequest:
		return 0, true
	case statusSysExStart:
		return -1, true // variable length, framed by 0xF7
	}
	return 0, false
}

func isRealTime(b byte) bool { return b >= statusTimingClock }

func isStatusByte(b byte) bool { return b&0x80 != 0 }

func channelOf(status byte) values.U4 { return values.U4(status & 0x0F) }
