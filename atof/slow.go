package atof

import (
	"encoding/binary"

	"github.com/calebcase/oops"

	"github.com/calebcase/float/integer"
	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
)

const (
	// limbDigits is the number of decimal digits accumulated per limb.
	limbDigits = 19

	eightZeros = 0x3030_3030_3030_3030
)

// slow settles the rounding of an ambiguous moderate result fp by exact
// big integer arithmetic over the digits of t.
func slow(t *scan.Token, fp Extended, l *layout.Layout) Extended {
	sciExp := scientificExponent(t)

	var digits integer.Int
	count := parseMantissa(&digits, t, l.MaxDigits)

	exp := sciExp + 1 - count
	if exp >= 0 {
		return positiveDigitComp(&digits, exp, l)
	}

	return negativeDigitComp(&digits, fp, exp, l)
}

// must panics on big integer capacity errors. The capacity is sized for the
// longest literal that can affect rounding, so reaching it is a defect.
func must(err error) {
	if err != nil {
		panic(oops.Trace(err))
	}
}

// positiveDigitComp rounds digits * 10^exp, an exact integer.
func positiveDigitComp(digits *integer.Int, exp int, l *layout.Layout) Extended {
	must(digits.Pow10(uint(exp)))

	mant, truncated := digits.Hi64()
	fp := Extended{
		Mant: mant,
		Exp:  digits.BitLen() - 64 + l.ExpBias,
	}

	round(&fp, l, func(fp *Extended, shift int) {
		roundNearestTieEven(fp, shift, func(odd, halfway, above bool) bool {
			return above || (halfway && truncated) || (odd && halfway)
		})
	})

	return fp
}

// negativeDigitComp rounds digits * 10^exp for exp < 0 by comparing the
// digits against the halfway point above the truncated candidate fp.
func negativeDigitComp(digits *integer.Int, fp Extended, exp int, l *layout.Layout) Extended {
	lower := fp
	round(&lower, l, roundDown)

	// Halfway between lower and its successor: (2m+1) * 2^(e-1).
	mant, binExp := l.Decompose(l.Word(lower.Mant, lower.Exp))
	theor := integer.FromUint64(mant<<1 + 1)
	theorExp := binExp - 1

	// Both sides are scaled by 10^-exp so they become integers; the 5s land
	// on theor, the 2s on whichever side has the smaller binary exponent.
	must(theor.Pow5(uint(-exp)))

	shift := theorExp - exp
	switch {
	case shift > 0:
		must(theor.Pow2(uint(shift)))
	case shift < 0:
		must(digits.Pow2(uint(-shift)))
	}

	ord := digits.Cmp(&theor)

	round(&fp, l, func(fp *Extended, shift int) {
		roundNearestTieEven(fp, shift, func(odd, _, _ bool) bool {
			switch {
			case ord > 0:
				return true
			case ord < 0:
				return false
			}

			return odd
		})
	})

	return fp
}

// scientificExponent returns the power of ten of the leading digit of t.
func scientificExponent(t *scan.Token) int {
	mant := t.Mantissa
	exp := t.Exponent

	for mant >= 10_000 {
		mant /= 10_000
		exp += 4
	}
	for mant >= 100 {
		mant /= 100
		exp += 2
	}
	for mant >= 10 {
		mant /= 10
		exp++
	}

	return exp
}

// parseMantissa accumulates up to maxDigits significant digits of t into
// out and returns how many digits out represents. Nonzero digits past
// maxDigits are folded in as one extra unit digit so the value compares
// strictly above any halfway point it would otherwise equal.
func parseMantissa(out *integer.Int, t *scan.Token, maxDigits int) (count int) {
	var (
		counter int
		value   uint64
	)

	flush := func() {
		must(out.MulSmall(smallIntPow10[counter]))
		must(out.AddSmall(value))
		counter = 0
		value = 0
	}

	accumulate := func(d []byte) []byte {
		for len(d) > 0 {
			for len(d) >= 8 && limbDigits-counter >= 8 && maxDigits-count >= 8 {
				value = value*100_000_000 + uint64(scan.EightDigits(d))
				d = d[8:]
				counter += 8
				count += 8
			}

			for len(d) > 0 && counter < limbDigits && count < maxDigits {
				value = value*10 + uint64(d[0]-'0')
				d = d[1:]
				counter++
				count++
			}

			flush()

			if count == maxDigits {
				return d
			}
		}

		return nil
	}

	rest := accumulate(skipZeros(t.Integer))
	if count == maxDigits {
		if isTruncated(rest) || isTruncated(t.Fraction) {
			must(out.MulSmall(10))
			must(out.AddSmall(1))
			count++
		}

		return count
	}

	fraction := t.Fraction
	if count == 0 {
		fraction = skipZeros(fraction)
	}

	rest = accumulate(fraction)
	if count == maxDigits && isTruncated(rest) {
		must(out.MulSmall(10))
		must(out.AddSmall(1))
		count++
	}

	return count
}

func load(d []byte) uint64 {
	return binary.LittleEndian.Uint64(d)
}

func skipZeros(d []byte) []byte {
	for len(d) >= 8 && load(d) == eightZeros {
		d = d[8:]
	}
	for len(d) > 0 && d[0] == '0' {
		d = d[1:]
	}

	return d
}

func isTruncated(d []byte) bool {
	for len(d) >= 8 {
		if load(d) != eightZeros {
			return true
		}
		d = d[8:]
	}
	for _, c := range d {
		if c != '0' {
			return true
		}
	}

	return false
}
