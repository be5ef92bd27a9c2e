package shortest

import (
	"github.com/calebcase/float/decimal"
	"github.com/calebcase/float/layout"
)

const (
	mantBits32  = 23
	cacheBits32 = 64
	kappa32     = 1
	bigDiv32    = 100 // 10^(kappa32+1)
	smallDiv32  = 10  // 10^kappa32

	tieExp32 = -35
)

func cache32At(k int) uint64 {
	if debug && (k < cacheMinK32 || k > cacheMaxK32) {
		panic(Error.New("binary32 cache index out of range: %d", k))
	}

	return cache32[k-cacheMinK32]
}

// Binary32 returns the shortest decimal that rounds to the binary32 value
// with bits word. The sign bit is ignored. word must be finite.
func Binary32(word uint32) decimal.Digits {
	l := layout.Binary32

	w := uint64(word) &^ l.SignMask
	if w == 0 {
		return decimal.Digits{}
	}

	mant, exp := l.Decompose(w)
	denorm := w&l.ExpMask == 0

	if mant == l.HiddenBit && !denorm {
		return shorter32(exp)
	}

	return normal32(uint32(mant), exp)
}

func shorter32(exp int) decimal.Digits {
	minusK := floorLog10Pow2MinusLog10_4Over3(exp)
	beta := exp + floorLog2Pow10(-minusK)
	phi := cache32At(-minusK)

	shift := cacheBits32 - mantBits32 - 1 - beta
	xi := uint32((phi - phi>>(mantBits32+2)) >> shift)
	zi := uint32((phi + phi>>(mantBits32+1)) >> shift)

	if !(2 <= exp && exp <= 3) {
		xi++
	}

	q := zi / 10
	if xi <= q*10 {
		s, e := removeTrailingZeros32(q, minusK+1)

		return decimal.Digits{Significand: uint64(s), Exponent: e}
	}

	yru := uint32(phi>>(shift-1)+1) / 2
	if exp == tieExp32 && yru%2 != 0 {
		yru--
	} else if yru < xi {
		yru++
	}

	return decimal.Digits{Significand: uint64(yru), Exponent: minusK}
}

func normal32(mant uint32, exp int) decimal.Digits {
	minusK := floorLog10Pow2(exp) - kappa32
	beta := exp + floorLog2Pow10(-minusK)
	phi := cache32At(-minusK)

	z := umul96Upper64((mant*2+1)<<beta, phi)
	zi, zIsInt := uint32(z>>32), uint32(z) == 0

	delta := uint32(phi >> (cacheBits32 - 1 - beta))

	s := zi / bigDiv32
	r := zi - bigDiv32*s

	switch {
	case r < delta:
		if r != 0 || !zIsInt || mant%2 == 0 {
			sig, e := removeTrailingZeros32(s, minusK+kappa32+1)

			return decimal.Digits{Significand: uint64(sig), Exponent: e}
		}

		s--
		r = bigDiv32
	case r == delta:
		xParity, xIsInt := mulParity32(mant*2-1, phi, beta)
		if xParity || (xIsInt && mant%2 == 0) {
			sig, e := removeTrailingZeros32(s, minusK+kappa32+1)

			return decimal.Digits{Significand: uint64(sig), Exponent: e}
		}
	}

	d := r + smallDiv32/2 - delta/2
	t := d / smallDiv32
	rho := d - t*smallDiv32

	yru := 10*s + t
	if rho == 0 {
		yParity, yIsInt := mulParity32(mant*2, phi, beta)
		approx := (d-smallDiv32/2)%2 != 0

		if yParity != approx {
			yru--
		} else if yIsInt && yru%2 != 0 {
			yru--
		}
	}

	return decimal.Digits{Significand: uint64(yru), Exponent: minusK + kappa32}
}

func mulParity32(mant2 uint32, phi uint64, beta int) (parity, isInt bool) {
	r := umul96Lower64(mant2, phi)
	parity = (r>>(64-beta))&1 != 0
	isInt = uint32(r>>(32-beta)) == 0

	return parity, isInt
}
