// Package layout describes the bit-level shape of the IEEE-754 binary32 and
// binary64 formats.
//
// The conversion algorithms are shared between the two widths; only the
// constants differ. Each algorithm receives a *Layout and never branches on
// the width except where native float arithmetic is required.
package layout

import (
	"github.com/zeebo/errs"
)

// Error is the class of layout errors.
var Error = errs.Class("layout")

// ErrBitSize is returned by For when the width is neither 32 nor 64.
var ErrBitSize = Error.New("invalid bit size")

// Layout holds the constants for one binary format.
type Layout struct {
	// Bits is the width of the format (32 or 64).
	Bits int

	// MaxDigits is the number of significant decimal digits that can affect
	// rounding: the digits of the smallest subnormal halfway point.
	MaxDigits int

	SignMask  uint64
	ExpMask   uint64
	HiddenBit uint64
	MantMask  uint64
	CarryMask uint64
	MantSize  int
	ExpBias   int
	DenormExp int
	MinExp    int
	InfPower  int
	InfBits   uint64

	// Round-to-even applies to Eisel-Lemire products only in this band.
	MinExpRoundToEven int
	MaxExpRoundToEven int

	// Decimal exponents outside this range are zero or infinity.
	SmallestPowerOfTen int
	LargestPowerOfTen  int

	// Fast path bounds.
	MinExpFastPath          int
	MaxExpFastPath          int
	MaxExpDisguisedFastPath int
	MaxMantissaFastPath     uint64
}

var (
	// Binary32 is single precision.
	Binary32 = newLayout(32, 114, 23, 150, -17, 10, -127, -65, 38, 10)

	// Binary64 is double precision.
	Binary64 = newLayout(64, 769, 52, 1075, -4, 23, -1023, -342, 308, 22)
)

func newLayout(width, maxDigits, mantSize, bias, minEven, maxEven, minExp, smallest, largest, fast int) *Layout {
	expBits := width - mantSize - 1
	maxBiased := 1<<expBits - 1

	l := &Layout{
		Bits:      width,
		MaxDigits: maxDigits,

		SignMask:  1 << (width - 1),
		ExpMask:   uint64(maxBiased) << mantSize,
		HiddenBit: 1 << mantSize,
		MantMask:  1<<mantSize - 1,
		CarryMask: 2 << mantSize,
		MantSize:  mantSize,
		ExpBias:   bias,
		DenormExp: 1 - bias,
		MinExp:    minExp,
		InfPower:  maxBiased,

		MinExpRoundToEven: minEven,
		MaxExpRoundToEven: maxEven,

		SmallestPowerOfTen: smallest,
		LargestPowerOfTen:  largest,

		MinExpFastPath: -fast,
		MaxExpFastPath: fast,

		MaxMantissaFastPath: 2 << mantSize,
	}

	l.InfBits = l.ExpMask

	// Fast path also covers mantissas scaled up by exact integer powers of
	// ten as long as they stay below MaxMantissaFastPath.
	digits := 0
	for v := l.MaxMantissaFastPath; v >= 10; v /= 10 {
		digits++
	}
	l.MaxExpDisguisedFastPath = fast + digits

	return l
}

// For returns the layout for the given bit size.
func For(bitSize int) (*Layout, error) {
	switch bitSize {
	case 32:
		return Binary32, nil
	case 64:
		return Binary64, nil
	}

	return nil, Error.New("%d: %w", bitSize, ErrBitSize)
}

// Word assembles a biased exponent and a mantissa field into a bit pattern.
func (l *Layout) Word(mant uint64, exp int) uint64 {
	return mant | uint64(exp)<<l.MantSize
}

// Decompose splits a positive bit pattern into its significand (hidden bit
// included for normal values) and unbiased binary exponent such that the
// value is mant * 2^exp.
func (l *Layout) Decompose(word uint64) (mant uint64, exp int) {
	biased := int((word & l.ExpMask) >> l.MantSize)
	mant = word & l.MantMask

	if biased == 0 {
		return mant, l.DenormExp
	}

	return mant | l.HiddenBit, biased - l.ExpBias
}

// IsFinite reports whether the bit pattern encodes a finite value.
func (l *Layout) IsFinite(word uint64) bool {
	return word&l.ExpMask != l.ExpMask
}
