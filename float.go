package float

import (
	"math"
	"unsafe"

	"github.com/zeebo/errs"

	"github.com/calebcase/float/atof"
	"github.com/calebcase/float/decimal"
	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
	"github.com/calebcase/float/shortest"
)

// Error is the class of float errors.
var Error = errs.Class("float")

var (
	// ErrSyntax is returned for malformed literals.
	ErrSyntax = scan.ErrSyntax

	// ErrBitSize is returned for widths other than 32 and 64.
	ErrBitSize = layout.ErrBitSize
)

const (
	// MaxLen32 is the longest text Format32 writes.
	MaxLen32 = 15

	// MaxLen64 is the longest text Format64 writes.
	MaxLen64 = 24
)

func parse(b []byte, l *layout.Layout) (word uint64, err error) {
	t, err := scan.Scan(b)
	if err != nil {
		return 0, Error.Wrap(err)
	}

	return atof.Bits(&t, l), nil
}

// Parse32 returns the binary32 value nearest to the decimal literal b.
func Parse32(b []byte) (float32, error) {
	word, err := parse(b, layout.Binary32)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(word)), nil
}

// Parse64 returns the binary64 value nearest to the decimal literal b.
func Parse64(b []byte) (float64, error) {
	word, err := parse(b, layout.Binary64)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(word), nil
}

// ParseFloat is Parse32 or Parse64 on a string, selected by bitSize. Binary32
// results are returned widened to float64.
func ParseFloat(s string, bitSize int) (float64, error) {
	b := unsafe.Slice(unsafe.StringData(s), len(s))

	switch bitSize {
	case 32:
		f, err := Parse32(b)

		return float64(f), err
	case 64:
		return Parse64(b)
	}

	_, err := layout.For(bitSize)

	return 0, Error.Wrap(err)
}

// Format32 writes the shortest text for f into buf and returns its length.
func Format32(buf *[MaxLen32]byte, f float32) int {
	word := math.Float32bits(f)

	return format(buf[:], uint64(word), layout.Binary32, func() decimal.Digits {
		return shortest.Binary32(word)
	})
}

// Format64 writes the shortest text for f into buf and returns its length.
func Format64(buf *[MaxLen64]byte, f float64) int {
	word := math.Float64bits(f)

	return format(buf[:], word, layout.Binary64, func() decimal.Digits {
		return shortest.Binary64(word)
	})
}

func format(buf []byte, word uint64, l *layout.Layout, digits func() decimal.Digits) int {
	negative := word&l.SignMask != 0

	if !l.IsFinite(word) {
		return decimal.WriteSpecial(buf, negative, word&l.MantMask != 0)
	}

	return decimal.Write(buf, negative, digits())
}

// AppendFloat appends the shortest text for f, rounded to bitSize, to dst.
// Any bitSize other than 32 is treated as 64.
func AppendFloat(dst []byte, f float64, bitSize int) []byte {
	if bitSize == 32 {
		var buf [MaxLen32]byte

		n := Format32(&buf, float32(f))

		return append(dst, buf[:n]...)
	}

	var buf [MaxLen64]byte

	n := Format64(&buf, f)

	return append(dst, buf[:n]...)
}

// FormatFloat returns the shortest text for f, rounded to bitSize.
func FormatFloat(f float64, bitSize int) string {
	var buf [MaxLen64]byte

	return string(AppendFloat(buf[:0], f, bitSize))
}
