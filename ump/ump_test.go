package ump_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/ump"
	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMIDI2NoteOnRoundTrip(t *testing.T) {
	// Group 1, channel 1, note 0x3C, velocity 0xC000.
	words := []uint32{0x41913C00, 0xC0000000}
	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)

	on, ok := evs[0].(event.NoteOn)
	require.True(t, ok)
	assert.Equal(t, values.NewU4(1), on.GroupValue)
	assert.Equal(t, values.NewU4(1), on.ChannelValue)
	assert.Equal(t, values.NewU7(0x3C), on.Note)
	assert.Equal(t, 16, on.Velocity.Bits())
	assert.Equal(t, values.NewU16(0xC000), on.Velocity.AsU16())

	got, err := ump.Encode(on)
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestMIDI1NoteOnStaysMT2(t *testing.T) {
	e := event.NoteOn{
		GroupValue:   values.NewU4(0),
		ChannelValue: values.NewU4(2),
		Note:         values.NewU7(60),
		Velocity:     event.V7(values.NewU7(100)),
	}
	words, err := ump.Encode(e)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, ump.MTMIDI1ChanVoice, ump.MessageTypeOf(words[0]))

	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestSysEx7ThreePacketReassembly(t *testing.T) {
	mfr, err := event.NewManufacturerID1Byte(0x41)
	require.NoError(t, err)
	payload := append([]byte{0x41}, make([]byte, 14)...)
	for i := range payload[1:] {
		payload[1+i] = byte(i + 1)
	}
	e := event.SysEx7{GroupValue: values.NewU4(0), Manufacturer: mfr, Data: payload[1:]}

	words, err := ump.Encode(e)
	require.NoError(t, err)
	// 15 payload bytes at 6 bytes/packet -> 3 packets (6+6+3) of 2 words each.
	require.Len(t, words, 6)

	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestSysEx7StreamFedOnePacketAtATime(t *testing.T) {
	mfr, err := event.NewManufacturerID1Byte(0x7D)
	require.NoError(t, err)
	e := event.SysEx7{GroupValue: values.NewU4(3), Manufacturer: mfr, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	words, err := ump.Encode(e)
	require.NoError(t, err)

	d := ump.NewDecoder()
	var got []event.Event
	for i := 0; i < len(words); i += 2 {
		evs, errs := d.Decode(words[i : i+2])
		require.Empty(t, errs)
		got = append(got, evs...)
	}
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestSysEx8RoundTripWithStreamID(t *testing.T) {
	e := event.SysEx8{GroupValue: values.NewU4(5), StreamID: 0x2A, Data: []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2, 3, 4, 5, 6, 7}}
	words, err := ump.Encode(e)
	require.NoError(t, err)

	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestMIDI2CCUsesFullWord(t *testing.T) {
	e := event.CC{
		GroupValue:   values.NewU4(0),
		ChannelValue: values.NewU4(0),
		Controller:   event.ControllerModulationWheelMSB,
		Value:        event.V16(values.NewU16(0xABCD)),
	}
	words, err := ump.Encode(e)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, ump.MTMIDI2ChanVoice, ump.MessageTypeOf(words[0]))

	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	cc, ok := evs[0].(event.CC)
	require.True(t, ok)
	assert.Equal(t, values.NewU16(0xABCD), cc.Value.AsU16())
}

func TestRPNAbsoluteAndRelativeRoundTrip(t *testing.T) {
	abs := event.RPN{
		GroupValue:   values.NewU4(0),
		ChannelValue: values.NewU4(4),
		Parameter:    event.RPNPitchBendSensitivity,
		Value:        event.WideValue32(values.NewU32(0x12345678)),
		Change:       event.ChangeAbsolute,
	}
	words, err := ump.Encode(abs)
	require.NoError(t, err)
	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, abs, evs[0])

	rel := abs
	rel.Change = event.ChangeRelative
	words, err = ump.Encode(rel)
	require.NoError(t, err)
	evs, errs = ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, rel, evs[0])
}

func TestNoteCCPerNoteControllerRoundTrip(t *testing.T) {
	e := event.NoteCC{
		GroupValue:   values.NewU4(1),
		ChannelValue: values.NewU4(9),
		Note:         values.NewU7(64),
		Controller:   event.PerNoteController{Kind: event.PerNoteControllerAssignable, Index: 12},
		Value:        values.NewU32(0x80000000),
	}
	words, err := ump.Encode(e)
	require.NoError(t, err)
	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestNoteOnWithAttributeRoundTrip(t *testing.T) {
	e := event.NoteOn{
		GroupValue:   values.NewU4(0),
		ChannelValue: values.NewU4(0),
		Note:         values.NewU7(72),
		Velocity:     event.V16(values.NewU16(0x7FFF)),
		Attribute:    &event.NoteAttribute{Type: event.NoteAttributePitch7_9, Data: values.NewU16(0x1234)},
	}
	words, err := ump.Encode(e)
	require.NoError(t, err)
	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestFlexDataPassesThroughUnrecognized(t *testing.T) {
	words := []uint32{0xD0000000, 0, 0, 0}
	evs, errs := ump.Decode(words)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	u, ok := evs[0].(event.Unrecognized)
	require.True(t, ok)
	assert.Equal(t, words, u.Words)

	got, err := ump.Encode(u)
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestFlexDataDisabledIsUnsupported(t *testing.T) {
	d := ump.NewDecoder(ump.WithFlexData(false))
	_, errs := d.Decode([]uint32{0xD0000000, 0, 0, 0})
	require.Len(t, errs, 1)
}

func TestTruncatedMessageReportsMalformed(t *testing.T) {
	// MT3 (SysEx7) declares 2 words but only 1 is supplied.
	_, errs := ump.Decode([]uint32{0x30010203})
	require.Len(t, errs, 1)
}
