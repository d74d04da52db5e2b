// Package ump implements the Universal MIDI Packet codec: message-type
// detection, the word-length table, MIDI-1-in-UMP and MIDI-2 channel
// voice encode/decode, SysEx7/SysEx8 chunking and reassembly, and utility
// messages.
package ump

import "github.com/PKsong/MIDIKit/midierr"

// MessageType is the high nibble of a UMP's first word.
type MessageType uint8

const (
	MTUtility        MessageType = 0x0
	MTSystem         MessageType = 0x1
	MTMIDI1ChanVoice MessageType = 0x2
	MTSysEx7         MessageType = 0x3
	MTMIDI2ChanVoice MessageType = 0x4
	MTSysEx8         MessageType = 0x5
	MTFlexData       MessageType = 0xD
	MTStream         MessageType = 0xF
)

// WordCount returns how many 32-bit words a message of the given type
// occupies: 1, 2, or 4. Message types outside the known table are
// reported as unsupported rather than guessed at.
func WordCount(mt MessageType) (int, error) {
	switch mt {
	case MTUtility, MTSystem, MTMIDI1ChanVoice:
		return 1, nil
	case MTSysEx7, MTMIDI2ChanVoice:
		return 2, nil
	case MTSysEx8, MTFlexData, MTStream:
		return 4, nil
	}
	return 0, midierr.NewUnsupported("UMP message type")
}

func messageType(word0 uint32) MessageType {
	return MessageType((word0 >> 28) & 0xF)
}

// MessageTypeOf reports a UMP word's message type, for callers inspecting
// raw words (tests, loggers) without going through Decode.
func MessageTypeOf(word0 uint32) MessageType { return messageType(word0) }

func group(word0 uint32) uint8 {
	return uint8((word0 >> 24) & 0xF)
}
