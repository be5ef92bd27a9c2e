package atof

import (
	"math/bits"

	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
)

// moderate converts t with the Eisel-Lemire method. A negative Exp in the
// result means the product was too close to a rounding boundary to decide;
// the Mant then holds the normalized scaled mantissa for the slow path.
func moderate(t *scan.Token, l *layout.Layout) Extended {
	fp := computeFloat(t.Exponent, t.Mantissa, l)

	// Dropped digits lie somewhere in [w, w+1). If both ends round alike the
	// result stands.
	if t.ManyDigits && fp.Exp >= 0 && fp != computeFloat(t.Exponent, t.Mantissa+1, l) {
		fp = computeError(t.Exponent, t.Mantissa, l)
	}

	return fp
}

// computeFloat computes w * 10^q rounded to the mantissa width of l, or an
// Extended flagged with invalidFP when the 128-bit product is ambiguous.
func computeFloat(q int, w uint64, l *layout.Layout) Extended {
	switch {
	case w == 0 || q < l.SmallestPowerOfTen:
		return Extended{}
	case q > l.LargestPowerOfTen:
		return Extended{Exp: l.InfPower}
	}

	lz := bits.LeadingZeros64(w)
	w <<= lz

	lo, hi := productApprox(q, w, l.MantSize+3)

	// The table entries are truncated; a product whose low word could still
	// carry into the kept bits cannot be trusted.
	if lo == ^uint64(0) && (q < -27 || q > 55) {
		return computeErrorScaled(q, hi, lz, l)
	}

	upper := int(hi >> 63)
	shift := upper + 64 - l.MantSize - 3
	mant := hi >> shift
	power2 := power(q) + upper - lz - l.MinExp

	if power2 <= 0 {
		if -power2+1 >= 64 {
			return Extended{}
		}

		mant >>= -power2 + 1
		mant += mant & 1
		mant >>= 1

		power2 = 0
		if mant >= l.HiddenBit {
			power2 = 1
		}

		return Extended{Mant: mant, Exp: power2}
	}

	// Exactly halfway between two floats: round to even instead of up.
	if lo <= 1 &&
		q >= l.MinExpRoundToEven &&
		q <= l.MaxExpRoundToEven &&
		mant&3 == 1 &&
		mant<<shift == hi {
		mant &^= 1
	}

	mant += mant & 1
	mant >>= 1

	if mant >= 2<<l.MantSize {
		mant = l.HiddenBit
		power2++
	}

	mant &^= l.HiddenBit
	if power2 >= l.InfPower {
		return Extended{Exp: l.InfPower}
	}

	return Extended{Mant: mant, Exp: power2}
}

// computeError returns the unrounded scaled mantissa of w * 10^q for the
// slow path.
func computeError(q int, w uint64, l *layout.Layout) Extended {
	lz := bits.LeadingZeros64(w)
	w <<= lz

	_, hi := productApprox(q, w, l.MantSize+3)

	return computeErrorScaled(q, hi, lz, l)
}

func computeErrorScaled(q int, w uint64, lz int, l *layout.Layout) Extended {
	// The product's top bit is in position 63 or 62.
	hilz := int(w>>63) ^ 1
	exp := power(q) + l.ExpBias - hilz - lz - 62

	return Extended{Mant: w << hilz, Exp: exp + invalidFP}
}

// power returns floor(log2(10^q)) + 63 for q in [-1 << 16, 1 << 16).
func power(q int) int {
	return (q*(152_170+65_536))>>16 + 63
}

// productApprox returns the top 128 bits of w * 5^q, refined with the low
// table word only when the bits kept by precision could change.
func productApprox(q int, w uint64, precision int) (lo, hi uint64) {
	if debug && (q < smallestPowerOfFive || q > largestPowerOfFive) {
		panic(Error.New("power of five out of range: %d", q))
	}

	mask := ^uint64(0)
	if precision < 64 {
		mask >>= precision
	}

	p := powersOfFive[q-smallestPowerOfFive]

	hi, lo = bits.Mul64(w, p.hi)
	if hi&mask == mask {
		secondHi, _ := bits.Mul64(w, p.lo)
		lo += secondHi
		if secondHi > lo {
			hi++
		}
	}

	return lo, hi
}
