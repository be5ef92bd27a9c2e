// Package shortest computes the shortest decimal representation of binary32
// and binary64 values using the Dragonbox algorithm.
//
// For a finite value v the result (s, e) is the decimal s * 10^e with the
// fewest significant digits among all decimals that round to v under
// round-to-nearest, ties-to-even. Among equally short candidates the one
// closest to v is chosen, and exact ties between two candidates go to the
// even significand. The significand never carries trailing zeros.
//
// Everything is computed with fixed-width integer arithmetic against a
// table of truncated powers of ten; no big integers are needed.
package shortest

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of shortest errors.
var Error = errs.Class("shortest")

type uint128 struct {
	hi, lo uint64
}

// floorLog10Pow2 returns floor(e * log10(2)) for e in [-2620, 2620].
func floorLog10Pow2(e int) int {
	return (e * 315653) >> 20
}

// floorLog2Pow10 returns floor(e * log2(10)) for e in [-1233, 1233].
func floorLog2Pow10(e int) int {
	return (e * 1741647) >> 19
}

// floorLog10Pow2MinusLog10_4Over3 returns floor(e * log10(2) - log10(4/3))
// for e in [-2985, 2936].
func floorLog10Pow2MinusLog10_4Over3(e int) int {
	return (e*631305 - 261663) >> 21
}

// umul96Upper64 returns the upper 64 bits of the 96-bit product x * y.
func umul96Upper64(x uint32, y uint64) uint64 {
	hi, lo := bits.Mul64(uint64(x), y)

	return hi<<32 | lo>>32
}

// umul96Lower64 returns the lower 64 bits of the 96-bit product x * y.
func umul96Lower64(x uint32, y uint64) uint64 {
	return uint64(x) * y
}

// umul192Upper128 returns the upper 128 bits of the 192-bit product x * y.
func umul192Upper128(x uint64, y uint128) uint128 {
	hi, lo := bits.Mul64(x, y.hi)
	mid, _ := bits.Mul64(x, y.lo)

	lo, carry := bits.Add64(lo, mid, 0)

	return uint128{hi: hi + carry, lo: lo}
}

// umul192Lower128 returns the lower 128 bits of the 192-bit product x * y.
func umul192Lower128(x uint64, y uint128) uint128 {
	high := x * y.hi
	hi, lo := bits.Mul64(x, y.lo)

	return uint128{hi: high + hi, lo: lo}
}

// removeTrailingZeros32 strips decimal trailing zeros from mant, which has at
// most 7 of them, adding the count to exp.
func removeTrailingZeros32(mant uint32, exp int) (uint32, int) {
	s := 0

	r := bits.RotateLeft32(mant*184254097, -4)
	if r < 429497 {
		s++
		mant = r
	}

	s *= 2
	r = bits.RotateLeft32(mant*42949673, -2)
	if r < 42949673 {
		s++
		mant = r
	}

	s *= 2
	r = bits.RotateLeft32(mant*1288490189, -1)
	if r < 429496730 {
		s++
		mant = r
	}

	return mant, exp + s
}

// removeTrailingZeros64 strips decimal trailing zeros from mant, which has at
// most 15 of them, adding the count to exp.
func removeTrailingZeros64(mant uint64, exp int) (uint64, int) {
	s := 0

	r := bits.RotateLeft64(mant*28999941890838049, -8)
	if r < 184467440738 {
		s++
		mant = r
	}

	s *= 2
	r = bits.RotateLeft64(mant*182622766329724561, -4)
	if r < 1844674407370956 {
		s++
		mant = r
	}

	s *= 2
	r = bits.RotateLeft64(mant*10330176681277348905, -2)
	if r < 184467440737095517 {
		s++
		mant = r
	}

	s *= 2
	r = bits.RotateLeft64(mant*14757395258967641293, -1)
	if r < 1844674407370955162 {
		s++
		mant = r
	}

	return mant, exp + s
}
