package smf

import "github.com/PKsong/MIDIKit/midierr"

// EncodeVLQ renders n as a variable-length quantity: 7 data bits per
// byte, continuation flag in bit 7, most significant byte first. n must
// fit in 28 bits (SMF never declares a longer delta-time or meta/SysEx
// length); the result is 1 to 4 bytes.
func EncodeVLQ(n uint32) []byte {
	var b [5]byte
	i := len(b) - 1
	b[i] = byte(n & 0x7F)
	n >>= 7
	for n > 0 {
		i--
		b[i] = byte(n&0x7F) | 0x80
		n >>= 7
	}
	return append([]byte(nil), b[i:]...)
}

// DecodeVLQ reads a VLQ from the front of data, returning its value and
// the number of bytes consumed (1 to 4). A VLQ longer than 4 bytes, or
// one truncated before its terminating byte, is Malformed.
func DecodeVLQ(data []byte) (uint32, int, error) {
	var v uint32
	for i := 0; i < len(data) && i < 4; i++ {
		b := data[i]
		v = v<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, midierr.NewMalformed("smf.VLQ", -1, "VLQ truncated or longer than 4 bytes")
}
