package values

// Scale implements the MIDI 2.0 (M2-115-U) "Min-Center-Max" bit-scaling
// algorithm between an N-bit and an M-bit unsigned value: zero maps to
// zero, the maximum maps to the maximum, and when both widths have a
// defined centre (2^(N-1)) it maps exactly to 2^(M-1). Down-scaling from a
// wider to a narrower width is truncation of the high bits; up-scaling
// repeats the source's low-order bits to fill the new low-order bits so
// that values between the landmarks still interpolate smoothly.
func Scale(value uint32, fromBits, toBits int) uint32 {
	if fromBits <= 0 || toBits <= 0 {
		return 0
	}
	if toBits <= fromBits {
		return uint32(uint64(value) >> uint(fromBits-toBits))
	}
	return uint32(scaleUp(uint64(value), fromBits, toBits))
}

func scaleUp(value uint64, fromBits, toBits int) uint64 {
	scaleBits := toBits - fromBits
	bitShifted := value << uint(scaleBits)

	if fromBits == 0 {
		return bitShifted
	}
	srcCenter := uint64(1) << uint(fromBits-1)
	if value <= srcCenter {
		return bitShifted
	}

	repeatBits := fromBits - 1
	if repeatBits <= 0 {
		return bitShifted
	}
	repeatMask := (uint64(1) << uint(repeatBits)) - 1
	repeatValue := value & repeatMask
	if scaleBits > repeatBits {
		repeatValue <<= uint(scaleBits - repeatBits)
	} else {
		repeatValue >>= uint(repeatBits - scaleBits)
	}
	for repeatValue != 0 {
		bitShifted |= repeatValue
		repeatValue >>= uint(repeatBits)
	}
	return bitShifted
}
