package atof

import (
	"github.com/calebcase/float/layout"
)

// round shifts fp down to the mantissa width of l with fn, then handles carry
// into the exponent and overflow to infinity. Values whose exponent is at or
// below the subnormal boundary are shifted all the way to their final
// position and their exponent resolved from the hidden bit.
func round(fp *Extended, l *layout.Layout, fn func(fp *Extended, shift int)) {
	mantShift := 64 - l.MantSize - 1

	if -fp.Exp >= mantShift {
		fn(fp, min(-fp.Exp+1, 64))
		fp.Exp = 0
		if fp.Mant >= l.HiddenBit {
			fp.Exp = 1
		}

		return
	}

	fn(fp, mantShift)

	if fp.Mant&l.CarryMask == l.CarryMask {
		fp.Mant >>= 1
		fp.Exp++
	}

	if fp.Exp >= l.InfPower {
		*fp = Extended{Exp: l.InfPower}

		return
	}

	fp.Mant &= l.MantMask
}

// roundNearestTieEven shifts fp right by shift and rounds up when up,
// given the discarded bits, says so.
func roundNearestTieEven(fp *Extended, shift int, up func(odd, halfway, above bool) bool) {
	mask := ^uint64(0)
	if shift < 64 {
		mask = 1<<shift - 1
	}

	var halfway uint64
	if shift > 0 {
		halfway = 1 << (shift - 1)
	}

	truncated := fp.Mant & mask
	above := truncated > halfway
	isHalfway := truncated == halfway

	if shift < 64 {
		fp.Mant >>= shift
	} else {
		fp.Mant = 0
	}
	fp.Exp += shift

	odd := fp.Mant&1 == 1
	if up(odd, isHalfway, above) {
		fp.Mant++
	}
}

// roundDown truncates fp by shift bits.
func roundDown(fp *Extended, shift int) {
	if shift < 64 {
		fp.Mant >>= shift
	} else {
		fp.Mant = 0
	}
	fp.Exp += shift
}
