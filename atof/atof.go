// Package atof converts lexed decimal literals to correctly rounded IEEE-754
// bit patterns.
//
// Conversion escalates through three tiers. The fast path handles literals
// whose mantissa and power of ten are both exact in native float arithmetic.
// The moderate path multiplies the mantissa by a 128-bit approximation of
// the power of five (Eisel-Lemire) and succeeds whenever the truncated
// product still determines the rounding. When it cannot, the slow path
// decides the rounding by comparing big integers built from every digit of
// the literal.
package atof

import (
	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
)

// Extended is an unrounded binary significand with a biased exponent.
type Extended struct {
	Mant uint64
	Exp  int
}

// invalidFP biases Exp to flag a moderate result the slow path must settle.
const invalidFP = -0x8000

// Bits returns the bit pattern of the value nearest to t in layout l, ties
// to even.
func Bits(t *scan.Token, l *layout.Layout) uint64 {
	switch t.Kind {
	case scan.NaN:
		return l.InfBits | l.HiddenBit>>1
	case scan.Infinity:
		return sign(l.InfBits, t, l)
	}

	word, ok := fast(t, l)
	if ok {
		return sign(word, t, l)
	}

	fp := moderate(t, l)
	if fp.Exp < 0 {
		fp.Exp -= invalidFP
		fp = slow(t, fp, l)
	}

	return sign(l.Word(fp.Mant, fp.Exp), t, l)
}

func sign(word uint64, t *scan.Token, l *layout.Layout) uint64 {
	if t.Negative {
		word |= l.SignMask
	}

	return word
}
