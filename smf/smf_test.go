package smf_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/smf"
	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Format 0, 1 track, 480 ticks/quarter, a Tempo event
// (500000us/quarter), a TimeSignature event (4/4, 24 clocks/click, 8
// 32nds/quarter), and the mandatory EndOfTrack.
func TestS1TempoTimeSignatureRoundTrip(t *testing.T) {
	data := []byte{
		0x4D, 0x54, 0x68, 0x64, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x01, 0x01, 0xE0,
		0x4D, 0x54, 0x72, 0x6B, 0x00, 0x00, 0x00, 0x13,
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20,
		0x00, 0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08,
		0x00, 0xFF, 0x2F, 0x00,
	}

	mf, err := smf.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), mf.Format)
	assert.Equal(t, smf.Division{TicksPerQuarter: 480}, mf.Division)
	require.Len(t, mf.Tracks, 1)
	require.Len(t, mf.Tracks[0], 3)

	tempo, ok := mf.Tracks[0][0].(smf.Tempo)
	require.True(t, ok)
	assert.Equal(t, uint32(500000), tempo.MicrosecondsPerQuarter)

	ts, ok := mf.Tracks[0][1].(smf.TimeSignature)
	require.True(t, ok)
	assert.Equal(t, uint8(4), ts.Numerator)
	assert.Equal(t, uint8(2), ts.DenominatorPower)
	assert.Equal(t, uint8(24), ts.ClocksPerMetronomeClick)
	assert.Equal(t, uint8(8), ts.ThirtySecondNotesPerQuarter)

	_, ok = mf.Tracks[0][2].(smf.EndOfTrack)
	require.True(t, ok)

	encoded, err := smf.Encode(mf)
	require.NoError(t, err)
	assert.Equal(t, data, encoded)
}

func TestVLQBijection(t *testing.T) {
	cases := []uint32{0, 1, 0x3F, 0x40, 0x7F, 0x80, 0x1FFF, 0x2000, 0xFFFFF, 0xFFFFFFF}
	for _, n := range cases {
		encoded := smf.EncodeVLQ(n)
		assert.LessOrEqual(t, len(encoded), 4)
		got, consumed, err := smf.DecodeVLQ(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), consumed)
		assert.Equal(t, n, got)
	}
}

func TestDecodeVLQTruncatedIsMalformed(t *testing.T) {
	_, _, err := smf.DecodeVLQ([]byte{0x81, 0x82, 0x83, 0x84})
	require.Error(t, err)
}

func TestMissingEndOfTrackIsMalformed(t *testing.T) {
	data := []byte{
		0x4D, 0x54, 0x68, 0x64, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x01, 0x01, 0xE0,
		0x4D, 0x54, 0x72, 0x6B, 0x00, 0x00, 0x00, 0x04,
		0x00, 0x90, 0x40, 0x40,
	}
	_, err := smf.Parse(data)
	require.Error(t, err)
}

func TestChannelVoiceRunningStatusRoundTrip(t *testing.T) {
	mf := &smf.MidiFile{
		Format:   0,
		Division: smf.Division{TicksPerQuarter: 96},
		Tracks: [][]smf.TrackEvent{
			{
				smf.ChannelMessage{Delta: 0, Message: event.NoteOn{
					ChannelValue: values.NewU4(0), Note: values.NewU7(60), Velocity: event.V7(values.NewU7(100)),
				}},
				smf.ChannelMessage{Delta: 96, Message: event.NoteOff{
					ChannelValue: values.NewU4(0), Note: values.NewU7(60), Velocity: event.V7(values.NewU7(0)),
				}},
				smf.EndOfTrack{},
			},
		},
	}

	encoded, err := smf.Encode(mf, smf.WithRunningStatus(true))
	require.NoError(t, err)

	decoded, err := smf.Parse(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Tracks, 1)
	require.Len(t, decoded.Tracks[0], 3)
	assert.Equal(t, mf.Tracks[0][0], decoded.Tracks[0][0])
	assert.Equal(t, mf.Tracks[0][1], decoded.Tracks[0][1])
}

func TestEncodeAppendsMissingEndOfTrack(t *testing.T) {
	mf := &smf.MidiFile{
		Format:   0,
		Division: smf.Division{TicksPerQuarter: 480},
		Tracks:   [][]smf.TrackEvent{{smf.Text{Kind: smf.TextTrackName, Value: "Lead"}}},
	}
	encoded, err := smf.Encode(mf)
	require.NoError(t, err)

	decoded, err := smf.Parse(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Tracks[0], 2)
	_, ok := decoded.Tracks[0][1].(smf.EndOfTrack)
	assert.True(t, ok)
}

func TestSMPTEDivisionRoundTrip(t *testing.T) {
	mf := &smf.MidiFile{
		Format:   1,
		Division: smf.Division{SMPTE: true, FramesPerSecond: -30, TicksPerFrame: 80},
		Tracks:   [][]smf.TrackEvent{{smf.EndOfTrack{}}},
	}
	encoded, err := smf.Encode(mf)
	require.NoError(t, err)
	decoded, err := smf.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, mf.Division, decoded.Division)
}

func TestXMFPatchTypePrefixRoundTrip(t *testing.T) {
	mf := &smf.MidiFile{
		Format:   0,
		Division: smf.Division{TicksPerQuarter: 480},
		Tracks: [][]smf.TrackEvent{{
			smf.XMFPatchTypePrefix{PatchType: 1},
			smf.EndOfTrack{},
		}},
	}
	encoded, err := smf.Encode(mf)
	require.NoError(t, err)

	decoded, err := smf.Parse(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Tracks[0], 2)
	prefix, ok := decoded.Tracks[0][0].(smf.XMFPatchTypePrefix)
	require.True(t, ok)
	assert.Equal(t, byte(1), prefix.PatchType)
}

func TestTempoMapTicksToMicros(t *testing.T) {
	track := []smf.TrackEvent{
		smf.Tempo{Delta: 0, MicrosecondsPerQuarter: 500000},
		smf.Tempo{Delta: 480, MicrosecondsPerQuarter: 1000000},
		smf.EndOfTrack{Delta: 480},
	}
	tm := smf.NewTempoMap(track)
	// First 480 ticks at 500000us/480 ticks-per-quarter = 500000us.
	assert.Equal(t, uint64(500000), tm.TicksToMicros(480, 480))
	// Next 480 ticks at the new tempo (1000000us/quarter) adds 1000000us.
	assert.Equal(t, uint64(1500000), tm.TicksToMicros(960, 480))
}
