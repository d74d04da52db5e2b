package values_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU7Construction(t *testing.T) {
	require.Equal(t, values.U7(100), values.NewU7(100))
	assert.Panics(t, func() { values.NewU7(128) })
	assert.Equal(t, values.U7(0x7F), values.NewU7Clamping(200))
	assert.Equal(t, values.U7(200&0x7F), values.NewU7Wrapping(200))
	_, ok := values.TryNewU7(128)
	assert.False(t, ok)
	v, ok := values.TryNewU7(127)
	assert.True(t, ok)
	assert.Equal(t, values.U7(127), v)
}

func TestU14Pair(t *testing.T) {
	u14 := values.FromPair(values.NewU7(0x40), values.NewU7(0x00))
	assert.Equal(t, values.U14(0x2000), u14)
	pair := u14.IntoPair()
	assert.Equal(t, values.NewU7(0x40), pair.MSB)
	assert.Equal(t, values.NewU7(0x00), pair.LSB)
}

func TestU4Wrap(t *testing.T) {
	assert.Equal(t, values.U4(15), values.NewU4(15))
	assert.Panics(t, func() { values.NewU4(16) })
	assert.Equal(t, values.U4(0), values.NewU4(15).Add(values.NewU4(1)))
}

func TestScaleLandmarks(t *testing.T) {
	// zero maps to zero
	assert.Equal(t, uint32(0), values.Scale(0, 7, 16))
	// max maps to max
	assert.Equal(t, uint32(0xFFFF), values.Scale(0x7F, 7, 16))
	// centre maps exactly to centre
	assert.Equal(t, uint32(0x8000), values.Scale(0x40, 7, 16))
}

func TestScaleDownIsTruncation(t *testing.T) {
	assert.Equal(t, uint32(0x40), values.Scale(0x8000, 16, 7))
	assert.Equal(t, uint32(0), values.Scale(0, 16, 7))
	assert.Equal(t, uint32(0x7F), values.Scale(0xFFFF, 16, 7))
}

func TestScaleMonotonic(t *testing.T) {
	prev := uint32(0)
	for v := uint32(0); v <= 0x7F; v++ {
		got := values.Scale(v, 7, 16)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
