package roundtrip

import (
	"fmt"
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/float"
)

// Error is the class of roundtrip errors.
var Error = errs.Class("roundtrip")

// ErrMismatch is wrapped by every Mismatch.
var ErrMismatch = Error.New("mismatch")

// Mismatch describes a bit pattern whose conversions disagree.
type Mismatch struct {
	Width int
	Bits  uint64
	Op    string
	Got   string
	Want  string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("roundtrip: binary%d %#x: %s: got %q, want %q", m.Width, m.Bits, m.Op, m.Got, m.Want)
}

func (m *Mismatch) Unwrap() error {
	return ErrMismatch
}

// Check32 verifies one binary32 bit pattern against ref.
func Check32(ref Reference, word uint32) error {
	var buf [float.MaxLen32]byte

	v := math.Float32frombits(word)
	n := float.Format32(&buf, v)
	text := buf[:n]

	mismatch := func(op string, got, want any) error {
		return &Mismatch{
			Width: 32,
			Bits:  uint64(word),
			Op:    op,
			Got:   fmt.Sprint(got),
			Want:  fmt.Sprint(want),
		}
	}

	if want := ref.Format32(v); string(text) != want {
		return mismatch("format", string(text), want)
	}

	back, err := float.Parse32(text)
	if err != nil {
		return Error.Wrap(err)
	}

	refBack, err := ref.Parse32(text)
	if err != nil {
		return Error.Wrap(err)
	}

	if math.IsNaN(float64(v)) {
		if !math.IsNaN(float64(back)) {
			return mismatch("parse", back, "NaN")
		}

		return nil
	}

	if got := math.Float32bits(back); got != word {
		return mismatch("parse", fmt.Sprintf("%#x", got), fmt.Sprintf("%#x", word))
	}

	if got := math.Float32bits(refBack); got != word {
		return mismatch("reference parse", fmt.Sprintf("%#x", got), fmt.Sprintf("%#x", word))
	}

	return nil
}

// Check64 verifies one binary64 bit pattern against ref.
func Check64(ref Reference, word uint64) error {
	var buf [float.MaxLen64]byte

	v := math.Float64frombits(word)
	n := float.Format64(&buf, v)
	text := buf[:n]

	mismatch := func(op string, got, want any) error {
		return &Mismatch{
			Width: 64,
			Bits:  word,
			Op:    op,
			Got:   fmt.Sprint(got),
			Want:  fmt.Sprint(want),
		}
	}

	if want := ref.Format64(v); string(text) != want {
		return mismatch("format", string(text), want)
	}

	back, err := float.Parse64(text)
	if err != nil {
		return Error.Wrap(err)
	}

	refBack, err := ref.Parse64(text)
	if err != nil {
		return Error.Wrap(err)
	}

	if math.IsNaN(v) {
		if !math.IsNaN(back) {
			return mismatch("parse", back, "NaN")
		}

		return nil
	}

	if got := math.Float64bits(back); got != word {
		return mismatch("parse", fmt.Sprintf("%#x", got), fmt.Sprintf("%#x", word))
	}

	if got := math.Float64bits(refBack); got != word {
		return mismatch("reference parse", fmt.Sprintf("%#x", got), fmt.Sprintf("%#x", word))
	}

	return nil
}
