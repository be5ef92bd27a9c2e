package scan

import (
	"encoding/binary"
)

// load reads 8 bytes little-endian. len(b) must be at least 8.
func load(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// isEightDigits reports whether every byte of v is an ASCII digit.
func isEightDigits(v uint64) bool {
	a := v + 0x4646_4646_4646_4646
	b := v - 0x3030_3030_3030_3030

	return (a|b)&0x8080_8080_8080_8080 == 0
}

// parseEightDigits converts 8 ASCII digits, first digit in the low byte, to
// their value.
func parseEightDigits(v uint64) uint32 {
	const (
		mask = 0x0000_00ff_0000_00ff
		mul1 = 0x000f_4240_0000_0064
		mul2 = 0x0000_2710_0000_0001
	)

	v -= 0x3030_3030_3030_3030
	v = v*10 + v>>8
	v = ((v&mask)*mul1 + (v>>16&mask)*mul2) >> 32

	return uint32(v)
}

// EightDigits returns the value of the 8 ASCII digits at the start of b.
func EightDigits(b []byte) uint32 {
	return parseEightDigits(load(b))
}
