package midi1

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// emitChannelVoice builds the event(s) completed by a fully-read
// channel-voice message. n is the data byte count (1 or 2) that was
// expected for status.
func (d *Decoder) emitChannelVoice(status, data1, data2 byte, n int) ([]event.Event, error) {
	ch := channelOf(status)
	const group = values.U4(0)

	switch status & 0xF0 {
	case statusNoteOff:
		return []event.Event{event.NoteOff{
			GroupValue: group, ChannelValue: ch,
			Note: values.NewU7(data1), Velocity: event.V7(values.NewU7(data2)),
		}}, nil
	case statusNoteOn:
		if data2 == 0 && d.velocityZeroAsNoteOff {
			return []event.Event{event.NoteOff{
				GroupValue: group, ChannelValue: ch,
				Note: values.NewU7(data1), Velocity: event.V7(values.NewU7(0)),
			}}, nil
		}
		return []event.Event{event.NoteOn{
			GroupValue: group, ChannelValue: ch,
			Note: values.NewU7(data1), Velocity: event.V7(values.NewU7(data2)),
		}}, nil
	case statusPolyPressure:
		return []event.Event{event.NotePressure{
			GroupValue: group, ChannelValue: ch,
			Note: values.NewU7(data1), Amount: event.V7(values.NewU7(data2)),
		}}, nil
	case statusCC:
		events := []event.Event{event.CC{
			GroupValue: group, ChannelValue: ch,
			Controller: event.Controller(values.NewU7(data1)), Value: event.V7(values.NewU7(data2)),
		}}
		if d.combineRPN {
			if extra := d.rpn.Feed(group, ch, data1, data2); extra != nil {
				events = append(events, extra)
			}
		}
		return events, nil
	case statusProgramChange:
		return []event.Event{event.ProgramChange{
			GroupValue: group, ChannelValue: ch,
			Program: values.NewU7(data1),
		}}, nil
	case statusChannelPressure:
		return []event.Event{event.Pressure{
			GroupValue: group, ChannelValue: ch,
			Amount: event.V7(values.NewU7(data1)),
		}}, nil
	case statusPitchBend:
		v := values.FromPair(values.NewU7(data2), values.NewU7(data1))
		return []event.Event{event.PitchBend{
			GroupValue: group, ChannelValue: ch,
			Value: event.WideValue14(v),
		}}, nil
	}

	switch status {
	case statusMTCQuarter:
		return []event.Event{event.TimecodeQuarterFrame{GroupValue: group, DataByte: values.NewU7(data1)}}, nil
	case statusSongSelect:
		return []event.Event{event.SongSelect{GroupValue: group, Number: values.NewU7(data1)}}, nil
	case statusSongPosition:
		v := values.FromPair(values.NewU7(data2), values.NewU7(data1))
		return []event.Event{event.SongPositionPointer{GroupValue: group, Beat: v}}, nil
	}

	_ = n
	return nil, midierr.NewMalformedf("midi1.Decoder", d.offset, "no channel-voice handler for status 0x%02X", status)
}

func decodeSysEx(data []byte) (event.Event, error) {
	if len(data) == 0 {
		return nil, midierr.NewMalformed("midi1.SysEx", -1, "empty SysEx body")
	}
	if data[0] == 0x7E || data[0] == 0x7F {
		kind := event.UniversalNonRealTime
		if data[0] == 0x7F {
			kind = event.UniversalRealTime
		}
		if len(data) < 4 {
			return nil, midierr.NewMalformed("midi1.SysEx", -1, "truncated universal SysEx header")
		}
		return event.UniversalSysEx7{
			Kind_:    kind,
			DeviceID: values.NewU7(data[1] & 0x7F),
			SubID1:   values.NewU7(data[2] & 0x7F),
			SubID2:   values.NewU7(data[3] & 0x7F),
			Data:     append([]byte(nil), data[4:]...),
		}, nil
	}
	mfr, n, err := event.ParseManufacturerID(data)
	if err != nil {
		return nil, err
	}
	return event.SysEx7{Manufacturer: mfr, Data: append([]byte(nil), data[n:]...)}, nil
}
