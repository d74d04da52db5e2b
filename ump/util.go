package ump

import "github.com/PKsong/MIDIKit/values"

func u4(b uint8) values.U4 { return values.NewU4Truncating(b) }
func u7(b uint8) values.U7 { return values.NewU7Truncating(b) }

func byte0(w uint32) uint8 { return uint8(w >> 24) }
func byte1(w uint32) uint8 { return uint8(w >> 16) }
func byte2(w uint32) uint8 { return uint8(w >> 8) }
func byte3(w uint32) uint8 { return uint8(w) }

func makeWord(b0, b1, b2, b3 uint8) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}
