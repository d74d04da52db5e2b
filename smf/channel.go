package smf

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

const (
	statusNoteOff         = 0x80
	statusNoteOn          = 0x90
	statusPolyPressure    = 0xA0
	statusCC              = 0xB0
	statusProgramChange   = 0xC0
	statusChannelPressure = 0xD0
	statusPitchBend       = 0xE0
)

// dataByteCount returns how many data bytes follow a channel-voice
// status byte. SMF tracks carry only channel-voice and SysEx/meta events
// on the wire (no system real-time, no other system-common messages), so
// this table is narrower than midi1's.
func dataByteCount(status byte) (int, bool) {
	switch status & 0xF0 {
	case statusNoteOff, statusNoteOn, statusPolyPressure, statusCC, statusPitchBend:
		return 2, true
	case statusProgramChange, statusChannelPressure:
		return 1, true
	}
	return 0, false
}

// decodeChannelVoice builds the event for a fully-read channel-voice
// message. Track events carry no UMP group, so GroupValue is always 0.
func decodeChannelVoice(status, data1, data2 byte) (event.Event, error) {
	ch := values.NewU4(status & 0x0F)
	switch status & 0xF0 {
	case statusNoteOff:
		return event.NoteOff{ChannelValue: ch, Note: values.NewU7(data1), Velocity: event.V7(values.NewU7(data2))}, nil
	case statusNoteOn:
		return event.NoteOn{ChannelValue: ch, Note: values.NewU7(data1), Velocity: event.V7(values.NewU7(data2))}, nil
	case statusPolyPressure:
		return event.NotePressure{ChannelValue: ch, Note: values.NewU7(data1), Amount: event.V7(values.NewU7(data2))}, nil
	case statusCC:
		return event.CC{ChannelValue: ch, Controller: event.Controller(values.NewU7(data1)), Value: event.V7(values.NewU7(data2))}, nil
	case statusProgramChange:
		return event.ProgramChange{ChannelValue: ch, Program: values.NewU7(data1)}, nil
	case statusChannelPressure:
		return event.Pressure{ChannelValue: ch, Amount: event.V7(values.NewU7(data1))}, nil
	case statusPitchBend:
		v := values.FromPair(values.NewU7(data2), values.NewU7(data1))
		return event.PitchBend{ChannelValue: ch, Value: event.WideValue14(v)}, nil
	}
	return nil, midierr.NewMalformedf("smf.Track", -1, "unsupported channel voice status 0x%02X", status)
}

// encodeChannelVoice renders an event back to its (status, data) wire
// form. Program change with a Bank set and any MIDI-2-only event have no
// SMF representation and fail with Unsupported.
func encodeChannelVoice(e event.Event) (status byte, data []byte, err error) {
	switch ev := e.(type) {
	case event.NoteOff:
		return statusNoteOff | byte(ev.ChannelValue), []byte{byte(ev.Note), byte(ev.Velocity.AsU7())}, nil
	case event.NoteOn:
		return statusNoteOn | byte(ev.ChannelValue), []byte{byte(ev.Note), byte(ev.Velocity.AsU7())}, nil
	case event.NotePressure:
		return statusPolyPressure | byte(ev.ChannelValue), []byte{byte(ev.Note), byte(ev.Amount.AsU7())}, nil
	case event.CC:
		return statusCC | byte(ev.ChannelValue), []byte{byte(ev.Controller), byte(ev.Value.AsU7())}, nil
	case event.ProgramChange:
		if ev.Bank != nil {
			return 0, nil, midierr.NewUnsupported("ProgramChange with Bank has no single-message SMF representation; emit a bank-select CC pair first")
		}
		return statusProgramChange | byte(ev.ChannelValue), []byte{byte(ev.Program)}, nil
	case event.Pressure:
		return statusChannelPressure | byte(ev.ChannelValue), []byte{byte(ev.Amount.AsU7())}, nil
	case event.PitchBend:
		pair := ev.Value.AsU14().IntoPair()
		return statusPitchBend | byte(ev.ChannelValue), []byte{byte(pair.LSB), byte(pair.MSB)}, nil
	}
	return 0, nil, midierr.NewUnsupported("event has no SMF channel-voice representation")
}
