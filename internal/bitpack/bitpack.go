// Package bitpack holds the small bit-level framing helpers shared by
// mtc and hui: MTC's 3-bit piece index + 4-bit nibble packing, and HUI's
// 4-bit signed sign-magnitude V-Pot delta. Both are genuinely sub-byte
// framing problems the byte-oriented midi1/ump/smf codecs never have to
// solve, grounded in the same github.com/dgryski/go-bitstream library
// jstefani-go-nordlead3/sysex.go uses for its 7-to-8-bit SysEx packing.
package bitpack

import (
	"bytes"

	"github.com/dgryski/go-bitstream"
)

// PackQuarterFrame packs a 3-bit piece index and 4-bit nibble into an MTC
// quarter-frame data byte in wire order 0nnn dddd: bit 7 zero, piece in
// bits 6-4, nibble in bits 3-0.
func PackQuarterFrame(piece, nibble uint8) byte {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	w.WriteBit(bitstream.Zero)
	w.WriteBits(uint64(piece&0x7), 3)
	w.WriteBits(uint64(nibble&0xF), 4)
	w.Flush(bitstream.Zero)
	return buf.Bytes()[0]
}

// UnpackQuarterFrame splits an MTC quarter-frame data byte (0nnn dddd)
// into its 3-bit piece index and 4-bit nibble.
func UnpackQuarterFrame(b byte) (piece, nibble uint8) {
	r := bitstream.NewReader(bytes.NewReader([]byte{b}))
	r.ReadBit()
	p, _ := r.ReadBits(3)
	n, _ := r.ReadBits(4)
	return uint8(p), uint8(n)
}

// PackSignMagnitude4 encodes a signed delta in [-7, 7] as a 4-bit
// sign-magnitude nibble (bit 3 sign, bits 2-0 magnitude) — the wire form
// HUI V-Pot rotation deltas use.
func PackSignMagnitude4(delta int8) uint8 {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	sign := uint64(0)
	mag := delta
	if delta < 0 {
		sign = 1
		mag = -delta
	}
	if mag > 7 {
		mag = 7
	}
	w.WriteBits(sign, 1)
	w.WriteBits(uint64(mag), 3)
	w.Flush(bitstream.Zero)
	return buf.Bytes()[0] >> 4
}

// UnpackSignMagnitude4 decodes a 4-bit sign-magnitude nibble back into a
// signed delta.
func UnpackSignMagnitude4(b uint8) int8 {
	r := bitstream.NewReader(bytes.NewReader([]byte{(b & 0xF) << 4}))
	sign, _ := r.ReadBits(1)
	mag, _ := r.ReadBits(3)
	v := int8(mag)
	if sign == 1 {
		v = -v
	}
	return v
}
