package midi1

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
)

// Encode renders an Event as MIDI 1.0 wire bytes: the status byte
// followed by its 0, 1, or 2 data bytes, with SysEx framed by 0xF0/0x7F
// manufacturer data/0xF7. Events with no MIDI 1.0 representation (the
// MIDI 2.0-only per-note and utility family) return an Unsupported error.
func Encode(e event.Event) ([]byte, error) {
	switch ev := e.(type) {
	case event.NoteOn:
		return []byte{statusNoteOn | byte(ev.ChannelValue), byte(ev.Note), byte(ev.Velocity.AsU7())}, nil
	case event.NoteOff:
		return []byte{statusNoteOff | byte(ev.ChannelValue), byte(ev.Note), byte(ev.Velocity.AsU7())}, nil
	case event.NotePressure:
		return []byte{statusPolyPressure | byte(ev.ChannelValue), byte(ev.Note), byte(ev.Amount.AsU7())}, nil
	case event.CC:
		return []byte{statusCC | byte(ev.ChannelValue), byte(ev.Controller), byte(ev.Value.AsU7())}, nil
	case event.ProgramChange:
		out := make([]byte, 0, 9)
		if ev.Bank != nil {
			pair := ev.Bank.IntoPair()
			out = append(out,
				statusCC|byte(ev.ChannelValue), byte(event.ControllerBankSelectMSB), byte(pair.MSB),
				statusCC|byte(ev.ChannelValue), byte(event.ControllerBankSelectLSB), byte(pair.LSB),
			)
		}
		out = append(out, statusProgramChange|byte(ev.ChannelValue), byte(ev.Program))
		return out, nil
	case event.Pressure:
		return []byte{statusChannelPressure | byte(ev.ChannelValue), byte(ev.Amount.AsU7())}, nil
	case event.PitchBend:
		pair := ev.Value.AsU14().IntoPair()
		return []byte{statusPitchBend | byte(ev.ChannelValue), byte(pair.LSB), byte(pair.MSB)}, nil
	case event.RPN:
		return encodeParamTransaction(byte(ev.ChannelValue), byte(ev.Parameter.MSB), byte(ev.Parameter.LSB), ev.Value, ev.Change, 101, 100), nil
	case event.NRPN:
		return encodeParamTransaction(byte(ev.ChannelValue), byte(ev.Parameter.MSB), byte(ev.Parameter.LSB), ev.Value, ev.Change, 99, 98), nil
	case event.TimecodeQuarterFrame:
		return []byte{statusMTCQuarter, byte(ev.DataByte)}, nil
	case event.SongPositionPointer:
		pair := ev.Beat.IntoPair()
		return []byte{statusSongPosition, byte(pair.LSB), byte(pair.MSB)}, nil
	case event.SongSelect:
		return []byte{statusSongSelect, byte(ev.Number)}, nil
	case event.TuneRequest:
		return []byte{statusTuneRequest}, nil
	case event.TimingClock:
		return []byte{statusTimingClock}, nil
	case event.Start:
		return []byte{statusStart}, nil
	case event.Continue:
		return []byte{statusContinue}, nil
	case event.Stop:
		return []byte{statusStop}, nil
	case event.ActiveSensing:
		return []byte{statusActiveSensing}, nil
	case event.SystemReset:
		return []byte{statusSystemReset}, nil
	case event.SysEx7:
		out := []byte{statusSysExStart}
		out = append(out, ev.Manufacturer.Bytes()...)
		out = append(out, ev.Data...)
		out = append(out, statusSysExEnd)
		return out, nil
	case event.UniversalSysEx7:
		marker := byte(0x7E)
		if ev.UniversalKind() == event.UniversalRealTime {
			marker = 0x7F
		}
		out := []byte{statusSysExStart, marker, byte(ev.DeviceID), byte(ev.SubID1), byte(ev.SubID2)}
		out = append(out, ev.Data...)
		out = append(out, statusSysExEnd)
		return out, nil
	}
	return nil, midierr.NewUnsupported("event has no MIDI 1.0 representation")
}

func encodeParamTransaction(ch, paramMSB, paramLSB byte, v event.WideValue, change event.ChangeKind, ccMSB, ccLSB byte) []byte {
	out := []byte{
		statusCC | ch, ccMSB, paramMSB,
		statusCC | ch, ccLSB, paramLSB,
	}
	pair := v.AsU14().IntoPair()
	if change == event.ChangeRelative {
		if pair.MSB != 0 || pair.LSB >= 0x40 {
			out = append(out, statusCC|ch, 97, byte(pair.LSB)) // decrement
		} else {
			out = append(out, statusCC|ch, 96, byte(pair.LSB)) // increment
		}
		return out
	}
	out = append(out, statusCC|ch, 6, byte(pair.MSB), statusCC|ch, 38, byte(pair.LSB))
	return out
}
