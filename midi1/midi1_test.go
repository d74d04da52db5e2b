package midi1_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midi1"
	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteOnRoundTrip(t *testing.T) {
	e := event.NoteOn{
		ChannelValue: values.NewU4(1),
		Note:         values.NewU7(60),
		Velocity:     event.V7(values.NewU7(100)),
	}
	bytes, err := midi1.Encode(e)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x91, 60, 100}, bytes)

	evs, errs := midi1.DecodeStream(bytes)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestNoteOnVelocityZeroBecomesNoteOff(t *testing.T) {
	evs, errs := midi1.DecodeStream([]byte{0x90, 60, 0})
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	off, ok := evs[0].(event.NoteOff)
	require.True(t, ok)
	assert.Equal(t, values.NewU7(60), off.Note)
}

func TestRealtimeDoesNotDisturbState(t *testing.T) {
	// Status byte for NoteOn, then a real-time byte interleaved, then the
	// two data bytes should still complete the NoteOn.
	d := midi1.NewDecoder()
	evs, err := d.Feed(0x90)
	require.NoError(t, err)
	assert.Empty(t, evs)

	evs, err = d.Feed(0xF8) // timing clock, side-band
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, event.TimingClock{}, evs[0])

	evs, err = d.Feed(60)
	require.NoError(t, err)
	assert.Empty(t, evs)

	evs, err = d.Feed(100)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, event.KindNoteOn, evs[0].Kind())
}

func TestSysEx7RoundTrip(t *testing.T) {
	mfr, err := event.NewManufacturerID1Byte(0x41)
	require.NoError(t, err)
	e := event.SysEx7{Manufacturer: mfr, Data: []byte{1, 2, 3}}
	bytes, err := midi1.Encode(e)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x41, 1, 2, 3, 0xF7}, bytes)

	evs, errs := midi1.DecodeStream(bytes)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	assert.Equal(t, e, evs[0])
}

func TestUniversalSysEx7Scenario(t *testing.T) {
	// Universal sysex: non-realtime, device 0, subs 6/1.
	bytes := []byte{0xF0, 0x7E, 0x00, 0x06, 0x01, 0x02, 0x03, 0xF7}
	evs, errs := midi1.DecodeStream(bytes)
	require.Empty(t, errs)
	require.Len(t, evs, 1)
	u, ok := evs[0].(event.UniversalSysEx7)
	require.True(t, ok)
	assert.Equal(t, event.UniversalNonRealTime, u.UniversalKind())
	assert.Equal(t, values.NewU7(6), u.SubID1)
	assert.Equal(t, values.NewU7(1), u.SubID2)
	assert.Equal(t, []byte{0x02, 0x03}, u.Data)
}

func TestRPNCombination(t *testing.T) {
	// Select RPN 0 (pitch bend sensitivity), data entry MSB = 2 semitones.
	bytes := []byte{0xB0, 101, 0, 0xB0, 100, 0, 0xB0, 6, 2}
	evs, errs := midi1.DecodeStream(bytes)
	require.Empty(t, errs)
	// Three CC events plus one synthesized RPN event on the data-entry byte.
	var sawRPN bool
	for _, e := range evs {
		if rpn, ok := e.(event.RPN); ok {
			sawRPN = true
			assert.Equal(t, event.RPNPitchBendSensitivity, rpn.Parameter)
		}
	}
	assert.True(t, sawRPN)
}

func TestMalformedStatusResetsState(t *testing.T) {
	d := midi1.NewDecoder()
	_, err := d.Feed(0xF4) // undefined status
	assert.Error(t, err)
	// decoder should have returned to Idle and accept a fresh message
	evs, err := d.Feed(0xF6)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, event.TuneRequest{}, evs[0])
}
