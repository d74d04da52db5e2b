package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
)

// Encode renders an event back into its UMP word form. Channel-voice events
// that carry only a 7-bit V/14-bit WideValue payload are encoded as MT2
// (MIDI 1 Channel Voice); those carrying a 16-bit V/32-bit WideValue
// payload, or any MIDI-2-only event (NoteCC, NotePitchBend, NoteManagement),
// are encoded as MT4 (MIDI 2 Channel Voice). A NoteOn/NoteOff carrying an
// Attribute and a ProgramChange carrying a Bank also take MT4 whatever
// their value widths. RPN/NRPN prefer MT4 since it
// carries the transaction in one packet instead of four CC messages.
func Encode(e event.Event) ([]uint32, error) {
	switch ev := e.(type) {
	case event.NoOp, event.JRClock, event.JRTimestamp:
		w, err := encodeUtility(e)
		if err != nil {
			return nil, err
		}
		return []uint32{w}, nil
	case event.TimecodeQuarterFrame, event.SongPositionPointer, event.SongSelect,
		event.TuneRequest, event.TimingClock, event.Start, event.Continue, event.Stop,
		event.ActiveSensing, event.SystemReset:
		w, err := encodeSystem(e)
		if err != nil {
			return nil, err
		}
		return []uint32{w}, nil
	case event.SysEx7:
		grp, payload, _ := sysEx7Payload(ev)
		return encodeSysEx7Words(grp, payload), nil
	case event.UniversalSysEx7:
		grp, payload, _ := sysEx7Payload(ev)
		return encodeSysEx7Words(grp, payload), nil
	case event.SysEx8:
		grp, stream, payload, _ := sysEx8Payload(ev)
		return encodeSysEx8Words(grp, stream, payload), nil
	case event.UniversalSysEx8:
		grp, stream, payload, _ := sysEx8Payload(ev)
		return encodeSysEx8Words(grp, stream, payload), nil
	case event.NoteOn:
		if ev.Velocity.Bits() == 16 || ev.Attribute != nil {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.NoteOff:
		if ev.Velocity.Bits() == 16 || ev.Attribute != nil {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.NotePressure:
		if ev.Amount.Bits() == 16 {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.CC:
		if ev.Value.Bits() == 16 {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.Pressure:
		if ev.Amount.Bits() == 16 {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.ProgramChange:
		if ev.Bank != nil {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.PitchBend:
		if ev.Value.Bits() == 32 {
			return encodeMIDI2(e)
		}
		w, err := encodeMIDI1ChanVoice(e)
		return []uint32{w}, err
	case event.RPN, event.NRPN, event.NoteCC, event.NotePitchBend, event.NoteManagement:
		return encodeMIDI2(e)
	case event.Unrecognized:
		return append([]uint32(nil), ev.Words...), nil
	}
	return nil, midierr.NewUnsupported("event has no UMP representation")
}

func encodeMIDI2(e event.Event) ([]uint32, error) {
	words, err := encodeMIDI2ChanVoice(e)
	if err != nil {
		return nil, err
	}
	return []uint32{words[0], words[1]}, nil
}
