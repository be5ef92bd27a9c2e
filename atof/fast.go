package atof

import (
	"math"
	"math/bits"

	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
)

// fast converts t with a single native multiply or divide when both the
// mantissa and the power of ten are exact. Exponents past the float power
// table are first folded into the mantissa when the product stays exact.
func fast(t *scan.Token, l *layout.Layout) (word uint64, ok bool) {
	if t.ManyDigits ||
		t.Mantissa > l.MaxMantissaFastPath ||
		t.Exponent < l.MinExpFastPath ||
		t.Exponent > l.MaxExpDisguisedFastPath {
		return 0, false
	}

	mant := t.Mantissa
	exp := t.Exponent

	if exp > l.MaxExpFastPath {
		hi, lo := bits.Mul64(mant, smallIntPow10[exp-l.MaxExpFastPath])
		if hi != 0 || lo > l.MaxMantissaFastPath {
			return 0, false
		}

		mant = lo
		exp = l.MaxExpFastPath
	}

	if l.Bits == 32 {
		f := float32(mant)
		if exp < 0 {
			f /= float32Pow10[-exp]
		} else {
			f *= float32Pow10[exp]
		}

		return uint64(math.Float32bits(f)), true
	}

	f := float64(mant)
	if exp < 0 {
		f /= float64Pow10[-exp]
	} else {
		f *= float64Pow10[exp]
	}

	return math.Float64bits(f), true
}
