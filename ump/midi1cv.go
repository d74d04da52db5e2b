package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// MT2 (MIDI 1 Channel Voice) word layout: byte0 = 0x2|group, byte1 = the
// MIDI 1.0 status byte (status nibble | channel), byte2/3 = its data
// bytes (byte3 unused where the MIDI 1.0 message only carries one).
func decodeMIDI1ChanVoice(grp uint8, w uint32) (event.Event, error) {
	status := byte1(w)
	d1, d2 := byte2(w)&0x7F, byte3(w)&0x7F
	g := u4(grp)
	ch := u4(status & 0x0F)

	switch status & 0xF0 {
	case 0x80:
		return event.NoteOff{GroupValue: g, ChannelValue: ch, Note: u7(d1), Velocity: event.V7(u7(d2))}, nil
	case 0x90:
		return event.NoteOn{GroupValue: g, ChannelValue: ch, Note: u7(d1), Velocity: event.V7(u7(d2))}, nil
	case 0xA0:
		return event.NotePressure{GroupValue: g, ChannelValue: ch, Note: u7(d1), Amount: event.V7(u7(d2))}, nil
	case 0xB0:
		return event.CC{GroupValue: g, ChannelValue: ch, Controller: event.Controller(u7(d1)), Value: event.V7(u7(d2))}, nil
	case 0xC0:
		return event.ProgramChange{GroupValue: g, ChannelValue: ch, Program: u7(d1)}, nil
	case 0xD0:
		return event.Pressure{GroupValue: g, ChannelValue: ch, Amount: event.V7(u7(d1))}, nil
	case 0xE0:
		return event.PitchBend{GroupValue: g, ChannelValue: ch, Value: event.WideValue14(values.FromPair(u7(d2), u7(d1)))}, nil
	}
	return nil, midierr.NewMalformedf("ump.MIDI1ChanVoice", -1, "unknown status nibble 0x%X", status&0xF0)
}

func encodeMIDI1ChanVoice(e event.Event) (uint32, error) {
	head := func(grp values.U4) uint8 { return byte(MTMIDI1ChanVoice)<<4 | byte(grp) }
	switch ev := e.(type) {
	case event.NoteOff:
		return makeWord(head(ev.GroupValue), 0x80|byte(ev.ChannelValue), byte(ev.Note), byte(ev.Velocity.AsU7())), nil
	case event.NoteOn:
		return makeWord(head(ev.GroupValue), 0x90|byte(ev.ChannelValue), byte(ev.Note), byte(ev.Velocity.AsU7())), nil
	case event.NotePressure:
		return makeWord(head(ev.GroupValue), 0xA0|byte(ev.ChannelValue), byte(ev.Note), byte(ev.Amount.AsU7())), nil
	case event.CC:
		return makeWord(head(ev.GroupValue), 0xB0|byte(ev.ChannelValue), byte(ev.Controller), byte(ev.Value.AsU7())), nil
	case event.ProgramChange:
		return makeWord(head(ev.GroupValue), 0xC0|byte(ev.ChannelValue), byte(ev.Program), 0), nil
	case event.Pressure:
		return makeWord(head(ev.GroupValue), 0xD0|byte(ev.ChannelValue), byte(ev.Amount.AsU7()), 0), nil
	case event.PitchBend:
		pair := ev.Value.AsU14().IntoPair()
		return makeWord(head(ev.GroupValue), 0xE0|byte(ev.ChannelValue), byte(pair.LSB), byte(pair.MSB)), nil
	}
	return 0, midierr.NewUnsupported("event has no MIDI-1-in-UMP representation")
}
