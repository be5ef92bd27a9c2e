package roundtrip

import (
	"context"
	"errors"
	"math"
	"os"
	"sync/atomic"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// broken formats one bit pattern incorrectly.
type broken struct {
	Strconv

	word uint32
}

func (b broken) Format32(f float32) string {
	if math.Float32bits(f) == b.word {
		return "1E0"
	}

	return b.Strconv.Format32(f)
}

func TestNormalize(t *testing.T) {
	type TC struct {
		input  string
		output string
		Mark   error
	}

	tcs := []TC{
		{input: "0e+00", output: "0E0", Mark: oops.New("unexpected")},
		{input: "-0e+00", output: "-0E0", Mark: oops.New("unexpected")},
		{input: "1.5e+00", output: "1.5E0", Mark: oops.New("unexpected")},
		{input: "1e-07", output: "1E-7", Mark: oops.New("unexpected")},
		{input: "1.7976931348623157e+308", output: "1.7976931348623157E308", Mark: oops.New("unexpected")},
		{input: "+Inf", output: "inf", Mark: oops.New("unexpected")},
		{input: "-Inf", output: "-inf", Mark: oops.New("unexpected")},
		{input: "NaN", output: "NaN", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.output, normalize(tc.input), tc.Mark)
		})
	}
}

func TestCheck(t *testing.T) {
	ref := Strconv{}

	for _, word := range Edges64 {
		require.NoError(t, Check64(ref, word), spew.Sdump(word))
	}

	for _, word := range []uint32{0, 1 << 31, 1, 0x007f_ffff, 0x3f80_0000, 0x7f7f_ffff, 0x7f80_0000, 0xff80_0000, 0x7fc0_0000} {
		require.NoError(t, Check32(ref, word), spew.Sdump(word))
	}
}

func TestCheckMismatch(t *testing.T) {
	err := Check32(broken{word: 0x4000_0000}, 0x4000_0000)
	require.ErrorIs(t, err, ErrMismatch)

	var m *Mismatch
	require.True(t, errors.As(err, &m))
	require.Equal(t, 32, m.Width)
	require.Equal(t, "format", m.Op)
	require.Equal(t, "2E0", m.Got)
	require.Equal(t, "1E0", m.Want)
}

func TestSweep32(t *testing.T) {
	opts := Options{Stride: 9973}
	if os.Getenv("FLOAT_EXHAUSTIVE") == "1" {
		opts.Stride = 1
	}

	var progress atomic.Uint64
	opts.Progress = func(checked uint64) {
		progress.Store(checked)
	}

	stats, err := Sweep32(context.Background(), Strconv{}, opts)
	require.NoError(t, err)

	want := (math.MaxUint32)/opts.stride() + 1
	require.Equal(t, want, stats.Checked)
	require.NotZero(t, progress.Load())
}

func TestSweep32Mismatch(t *testing.T) {
	opts := Options{Stride: 1 << 16, Workers: 4}

	stats, err := Sweep32(context.Background(), broken{word: 0x4000_0000}, opts)
	require.ErrorIs(t, err, ErrMismatch)
	require.Less(t, stats.Checked, uint64(1<<16))
}

func TestSweep32Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep32(ctx, Strconv{}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSample64(t *testing.T) {
	n := uint64(100_000)

	stats, err := Sample64(context.Background(), Strconv{}, n, 64, Options{Workers: 3})
	require.NoError(t, err)
	require.Equal(t, n+uint64(len(Edges64)), stats.Checked)
}

func TestSample64Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sample64(ctx, Strconv{}, 1_000, 1, Options{})
	require.ErrorIs(t, err, context.Canceled)
}
