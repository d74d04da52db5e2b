package event_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteNameRoundTrip(t *testing.T) {
	assert.Equal(t, "C4", event.NoteName(values.NewU7(60)))
	n, err := event.ParseNoteName("C4")
	require.NoError(t, err)
	assert.Equal(t, values.NewU7(60), n)

	n, err = event.ParseNoteName("F#3")
	require.NoError(t, err)
	assert.Equal(t, values.NewU7(54), n)
}

func TestManufacturerIDRoundTrip(t *testing.T) {
	id, err := event.NewManufacturerID1Byte(0x41)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41}, id.Bytes())

	_, err = event.NewManufacturerID1Byte(0x7E)
	assert.Error(t, err)

	ext, err := event.NewManufacturerID3Byte(0x00, 0x21)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x21}, ext.Bytes())

	parsed, n, err := event.ParseManufacturerID([]byte{0x00, 0x00, 0x21, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, ext, parsed)
}

func TestControllerNaming(t *testing.T) {
	assert.Equal(t, "Sustain Pedal", event.ControllerSustainPedal.Name())
	assert.Equal(t, "CC 42", event.Controller(42).Name())
}

func TestVScaling(t *testing.T) {
	v := event.V7(values.NewU7(0x40))
	assert.Equal(t, values.U16(0x8000), v.AsU16())
	assert.Equal(t, values.NewU7(0x40), v.AsU7())
}

func TestKindDispatch(t *testing.T) {
	var e event.Event = event.NoteOn{Note: values.NewU7(60), Velocity: event.V7(values.NewU7(100))}
	assert.Equal(t, event.KindNoteOn, e.Kind())
}
