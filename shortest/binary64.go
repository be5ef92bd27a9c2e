package shortest

import (
	"github.com/calebcase/float/decimal"
	"github.com/calebcase/float/layout"
)

const (
	mantBits64  = 52
	cacheBits64 = 128
	kappa64     = 2
	bigDiv64    = 1000 // 10^(kappa64+1)
	smallDiv64  = 100  // 10^kappa64

	// Shorter interval midpoints land exactly on a tie only for this
	// binary exponent.
	tieExp64 = -77
)

func cache64At(k int) uint128 {
	if debug && (k < cacheMinK64 || k > cacheMaxK64) {
		panic(Error.New("binary64 cache index out of range: %d", k))
	}

	return cache64[k-cacheMinK64]
}

// Binary64 returns the shortest decimal that rounds to the binary64 value
// with bits word. The sign bit is ignored. word must be finite.
func Binary64(word uint64) decimal.Digits {
	l := layout.Binary64

	word &^= l.SignMask
	if word == 0 {
		return decimal.Digits{}
	}

	mant, exp := l.Decompose(word)
	denorm := word&l.ExpMask == 0

	if mant == l.HiddenBit && !denorm {
		return shorter64(exp)
	}

	return normal64(mant, exp)
}

// shorter64 handles significands that are an exact power of two, where the
// gap to the next smaller float is half the gap to the next larger one.
func shorter64(exp int) decimal.Digits {
	minusK := floorLog10Pow2MinusLog10_4Over3(exp)
	beta := exp + floorLog2Pow10(-minusK)
	phi := cache64At(-minusK)

	shift := cacheBits64/2 - mantBits64 - 1 - beta
	xi := (phi.hi - phi.hi>>(mantBits64+2)) >> shift
	zi := (phi.hi + phi.hi>>(mantBits64+1)) >> shift

	// The left endpoint is included only when it is an integer.
	if !(2 <= exp && exp <= 3) {
		xi++
	}

	q := zi / 10
	if xi <= q*10 {
		s, e := removeTrailingZeros64(q, minusK+1)

		return decimal.Digits{Significand: s, Exponent: e}
	}

	yru := (phi.hi>>(shift-1) + 1) / 2
	if exp == tieExp64 && yru%2 != 0 {
		yru--
	} else if yru < xi {
		yru++
	}

	return decimal.Digits{Significand: yru, Exponent: minusK}
}

func normal64(mant uint64, exp int) decimal.Digits {
	minusK := floorLog10Pow2(exp) - kappa64
	beta := exp + floorLog2Pow10(-minusK)
	phi := cache64At(-minusK)

	z := umul192Upper128((mant*2+1)<<beta, phi)
	zi, zIsInt := z.hi, z.lo == 0

	delta := uint32(phi.hi >> (cacheBits64/2 - 1 - beta))

	s := zi / bigDiv64
	r := uint32(zi - bigDiv64*s)

	switch {
	case r < delta:
		if r != 0 || !zIsInt || mant%2 == 0 {
			sig, e := removeTrailingZeros64(s, minusK+kappa64+1)

			return decimal.Digits{Significand: sig, Exponent: e}
		}

		// The right endpoint itself is excluded for odd significands.
		s--
		r = bigDiv64
	case r == delta:
		xParity, xIsInt := mulParity64(mant*2-1, phi, beta)
		if xParity || (xIsInt && mant%2 == 0) {
			sig, e := removeTrailingZeros64(s, minusK+kappa64+1)

			return decimal.Digits{Significand: sig, Exponent: e}
		}
	}

	d := r + smallDiv64/2 - delta/2
	t := d / smallDiv64
	rho := d - t*smallDiv64

	yru := 10*s + uint64(t)
	if rho == 0 {
		yParity, yIsInt := mulParity64(mant*2, phi, beta)
		approx := (d-smallDiv64/2)%2 != 0

		if yParity != approx {
			yru--
		} else if yIsInt && yru%2 != 0 {
			yru--
		}
	}

	return decimal.Digits{Significand: yru, Exponent: minusK + kappa64}
}

// mulParity64 returns the parity of the integer part of mant2 * phi scaled
// by beta, and whether the fractional part is zero.
func mulParity64(mant2 uint64, phi uint128, beta int) (parity, isInt bool) {
	r := umul192Lower128(mant2, phi)
	parity = (r.hi>>(64-beta))&1 != 0
	isInt = r.hi<<beta|r.lo>>(64-beta) == 0

	return parity, isInt
}
