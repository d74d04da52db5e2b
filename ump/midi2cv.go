package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// MIDI 2.0 Channel Voice status nibbles (word0 byte1 high nibble).
const (
	mt4RegisteredPerNoteController  = 0x0
	mt4AssignablePerNoteController  = 0x1
	mt4RegisteredController         = 0x2 // RPN, absolute
	mt4AssignableController         = 0x3 // NRPN, absolute
	mt4RelativeRegisteredController = 0x4 // RPN, relative
	mt4RelativeAssignableController = 0x5 // NRPN, relative
	mt4PerNotePitchBend             = 0x6
	mt4NoteOff                      = 0x8
	mt4NoteOn                       = 0x9
	mt4PolyPressure                 = 0xA
	mt4CC                           = 0xB
	mt4ProgramChange                = 0xC
	mt4ChannelPressure              = 0xD
	mt4PitchBend                    = 0xE
	mt4PerNoteManagement            = 0xF
)

func decodeMIDI2ChanVoice(grp uint8, words []uint32) (event.Event, error) {
	w0, w1 := words[0], words[1]
	statusNibble := byte1(w0) >> 4
	ch := u4(byte1(w0) & 0x0F)
	g := u4(grp)
	b2, b3 := byte2(w0), byte3(w0)

	switch statusNibble {
	case mt4RegisteredPerNoteController, mt4AssignablePerNoteController:
		kind := event.PerNoteControllerRegistered
		if statusNibble == mt4AssignablePerNoteController {
			kind = event.PerNoteControllerAssignable
		}
		return event.NoteCC{
			GroupValue: g, ChannelValue: ch, Note: u7(b2),
			Controller: event.PerNoteController{Kind: kind, Index: b3},
			Value:      values.NewU32(w1),
		}, nil
	case mt4RegisteredController, mt4RelativeRegisteredController:
		change := event.ChangeAbsolute
		if statusNibble == mt4RelativeRegisteredController {
			change = event.ChangeRelative
		}
		return event.RPN{
			GroupValue: g, ChannelValue: ch,
			Parameter: event.RegisteredParameter{MSB: u7(b2), LSB: u7(b3)},
			Value:     event.WideValue32(values.NewU32(w1)),
			Change:    change,
		}, nil
	case mt4AssignableController, mt4RelativeAssignableController:
		change := event.ChangeAbsolute
		if statusNibble == mt4RelativeAssignableController {
			change = event.ChangeRelative
		}
		return event.NRPN{
			GroupValue: g, ChannelValue: ch,
			Parameter: values.Pair7{MSB: u7(b2), LSB: u7(b3)},
			Value:     event.WideValue32(values.NewU32(w1)),
			Change:    change,
		}, nil
	case mt4PerNotePitchBend:
		return event.NotePitchBend{GroupValue: g, ChannelValue: ch, Note: u7(b2), Value: values.NewU32(w1)}, nil
	case mt4NoteOff, mt4NoteOn:
		velocity := values.NewU16(uint16(byte0(w1))<<8 | uint16(byte1(w1)))
		var attr *event.NoteAttribute
		if b3 != 0 {
			attr = &event.NoteAttribute{
				Type: event.NoteAttributeType(b3),
				Data: values.NewU16(uint16(byte2(w1))<<8 | uint16(byte3(w1))),
			}
		}
		if statusNibble == mt4NoteOff {
			return event.NoteOff{GroupValue: g, ChannelValue: ch, Note: u7(b2), Velocity: event.V16(velocity), Attribute: attr}, nil
		}
		return event.NoteOn{GroupValue: g, ChannelValue: ch, Note: u7(b2), Velocity: event.V16(velocity), Attribute: attr}, nil
	case mt4PolyPressure:
		return event.NotePressure{GroupValue: g, ChannelValue: ch, Note: u7(b2), Amount: event.V16(values.NewU16(uint16(w1 >> 16)))}, nil
	case mt4CC:
		return event.CC{GroupValue: g, ChannelValue: ch, Controller: event.Controller(u7(b2)), Value: event.V16(values.NewU16(uint16(w1 >> 16)))}, nil
	case mt4ProgramChange:
		bankValid := b3&0x01 != 0
		program := u7(byte0(w1))
		var bank *values.U14
		if bankValid {
			b := values.FromPair(u7(byte2(w1)), u7(byte3(w1)))
			bank = &b
		}
		return event.ProgramChange{GroupValue: g, ChannelValue: ch, Program: program, Bank: bank}, nil
	case mt4ChannelPressure:
		return event.Pressure{GroupValue: g, ChannelValue: ch, Amount: event.V16(values.NewU16(uint16(w1 >> 16)))}, nil
	case mt4PitchBend:
		return event.PitchBend{GroupValue: g, ChannelValue: ch, Value: event.WideValue32(values.NewU32(w1))}, nil
	case mt4PerNoteManagement:
		return event.NoteManagement{
			GroupValue: g, ChannelValue: ch, Note: u7(b2),
			Detach: b3&0x01 != 0, Reset: b3&0x02 != 0,
		}, nil
	}
	return nil, midierr.NewMalformedf("ump.MIDI2ChanVoice", -1, "unknown status nibble 0x%X", statusNibble)
}

func encodeMIDI2ChanVoice(e event.Event) ([2]uint32, error) {
	head := func(ch values.U4, statusNibble uint8) uint8 {
		return byte(statusNibble)<<4 | byte(ch)
	}
	mt := func(grp values.U4) uint8 { return byte(MTMIDI2ChanVoice)<<4 | byte(grp) }

	switch ev := e.(type) {
	case event.NoteCC:
		sn := uint8(mt4RegisteredPerNoteController)
		if ev.Controller.Kind == event.PerNoteControllerAssignable {
			sn = mt4AssignablePerNoteController
		}
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, sn), byte(ev.Note), ev.Controller.Index)
		return [2]uint32{w0, ev.Value.Value()}, nil
	case event.RPN:
		sn := uint8(mt4RegisteredController)
		if ev.Change == event.ChangeRelative {
			sn = mt4RelativeRegisteredController
		}
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, sn), byte(ev.Parameter.MSB), byte(ev.Parameter.LSB))
		return [2]uint32{w0, ev.Value.AsU32().Value()}, nil
	case event.NRPN:
		sn := uint8(mt4AssignableController)
		if ev.Change == event.ChangeRelative {
			sn = mt4RelativeAssignableController
		}
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, sn), byte(ev.Parameter.MSB), byte(ev.Parameter.LSB))
		return [2]uint32{w0, ev.Value.AsU32().Value()}, nil
	case event.NotePitchBend:
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4PerNotePitchBend), byte(ev.Note), 0)
		return [2]uint32{w0, ev.Value.Value()}, nil
	case event.NoteOff, event.NoteOn:
		var note values.U7
		var velocity event.V
		var attr *event.NoteAttribute
		sn := uint8(mt4NoteOff)
		var grp, ch values.U4
		if off, ok := e.(event.NoteOff); ok {
			note, velocity, attr, grp, ch = off.Note, off.Velocity, off.Attribute, off.GroupValue, off.ChannelValue
		} else {
			on := e.(event.NoteOn)
			note, velocity, attr, grp, ch = on.Note, on.Velocity, on.Attribute, on.GroupValue, on.ChannelValue
			sn = mt4NoteOn
		}
		attrType := uint8(event.NoteAttributeNone)
		var attrData values.U16
		if attr != nil {
			attrType = uint8(attr.Type)
			attrData = attr.Data
		}
		v16 := velocity.AsU16()
		w0 := makeWord(mt(grp), head(ch, sn), byte(note), attrType)
		w1 := makeWord(byte(v16>>8), byte(v16), byte(attrData>>8), byte(attrData))
		return [2]uint32{w0, w1}, nil
	case event.NotePressure:
		v16 := ev.Amount.AsU16()
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4PolyPressure), byte(ev.Note), 0)
		return [2]uint32{w0, makeWord(byte(v16>>8), byte(v16), 0, 0)}, nil
	case event.CC:
		v16 := ev.Value.AsU16()
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4CC), byte(ev.Controller), 0)
		return [2]uint32{w0, makeWord(byte(v16>>8), byte(v16), 0, 0)}, nil
	case event.ProgramChange:
		var flags uint8
		var bankMSB, bankLSB uint8
		if ev.Bank != nil {
			flags = 0x01
			pair := ev.Bank.IntoPair()
			bankMSB, bankLSB = byte(pair.MSB), byte(pair.LSB)
		}
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4ProgramChange), 0, flags)
		w1 := makeWord(byte(ev.Program), 0, bankMSB, bankLSB)
		return [2]uint32{w0, w1}, nil
	case event.Pressure:
		v16 := ev.Amount.AsU16()
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4ChannelPressure), 0, 0)
		return [2]uint32{w0, makeWord(byte(v16>>8), byte(v16), 0, 0)}, nil
	case event.PitchBend:
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4PitchBend), 0, 0)
		return [2]uint32{w0, ev.Value.AsU32().Value()}, nil
	case event.NoteManagement:
		var flags uint8
		if ev.Detach {
			flags |= 0x01
		}
		if ev.Reset {
			flags |= 0x02
		}
		w0 := makeWord(mt(ev.GroupValue), head(ev.ChannelValue, mt4PerNoteManagement), byte(ev.Note), flags)
		return [2]uint32{w0, 0}, nil
	}
	return [2]uint32{}, midierr.NewUnsupported("event has no MIDI-2 channel voice representation")
}
