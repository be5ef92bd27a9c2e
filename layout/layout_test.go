package layout

import (
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	l, err := For(32)
	require.NoError(t, err)
	require.Same(t, Binary32, l)

	l, err = For(64)
	require.NoError(t, err)
	require.Same(t, Binary64, l)

	for _, bitSize := range []int{0, 16, 63, 128} {
		_, err = For(bitSize)
		require.ErrorIs(t, err, ErrBitSize)
	}
}

func TestConstants(t *testing.T) {
	type TC struct {
		name   string
		layout *Layout
		want   Layout
		Mark   error
	}

	tcs := []TC{
		{
			name:   "binary32",
			layout: Binary32,
			want: Layout{
				Bits:      32,
				MaxDigits: 114,
				SignMask:  0x8000_0000,
				ExpMask:   0x7f80_0000,
				HiddenBit: 0x0080_0000,
				MantMask:  0x007f_ffff,
				CarryMask: 0x0100_0000,
				MantSize:  23,
				ExpBias:   150,
				DenormExp: -149,
				MinExp:    -127,
				InfPower:  0xff,
				InfBits:   0x7f80_0000,

				MinExpRoundToEven: -17,
				MaxExpRoundToEven: 10,

				SmallestPowerOfTen: -65,
				LargestPowerOfTen:  38,

				MinExpFastPath:          -10,
				MaxExpFastPath:          10,
				MaxExpDisguisedFastPath: 17,
				MaxMantissaFastPath:     1 << 24,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "binary64",
			layout: Binary64,
			want: Layout{
				Bits:      64,
				MaxDigits: 769,
				SignMask:  0x8000_0000_0000_0000,
				ExpMask:   0x7ff0_0000_0000_0000,
				HiddenBit: 0x0010_0000_0000_0000,
				MantMask:  0x000f_ffff_ffff_ffff,
				CarryMask: 0x0020_0000_0000_0000,
				MantSize:  52,
				ExpBias:   1075,
				DenormExp: -1074,
				MinExp:    -1023,
				InfPower:  0x7ff,
				InfBits:   0x7ff0_0000_0000_0000,

				MinExpRoundToEven: -4,
				MaxExpRoundToEven: 23,

				SmallestPowerOfTen: -342,
				LargestPowerOfTen:  308,

				MinExpFastPath:          -22,
				MaxExpFastPath:          22,
				MaxExpDisguisedFastPath: 37,
				MaxMantissaFastPath:     1 << 53,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, *tc.layout, tc.Mark)
		})
	}
}

func TestDecompose(t *testing.T) {
	type TC struct {
		value float64
		mant  uint64
		exp   int
	}

	tcs := []TC{
		{value: 1, mant: 1 << 52, exp: -52},
		{value: 3, mant: 3 << 51, exp: -51},
		{value: math.SmallestNonzeroFloat64, mant: 1, exp: -1074},
		{value: 0x1p-1022, mant: 1 << 52, exp: -1074},
		{value: math.MaxFloat64, mant: 1<<53 - 1, exp: 971},
	}

	for _, tc := range tcs {
		mant, exp := Binary64.Decompose(math.Float64bits(tc.value))
		require.Equal(t, tc.mant, mant, tc.value)
		require.Equal(t, tc.exp, exp, tc.value)

		require.Equal(t, tc.value, math.Ldexp(float64(mant), exp))
	}

	mant, exp := Binary32.Decompose(uint64(math.Float32bits(1.5)))
	require.Equal(t, uint64(3<<22), mant)
	require.Equal(t, -23, exp)
}

func TestWord(t *testing.T) {
	word := Binary64.Word(0, 1023)
	require.Equal(t, 1.0, math.Float64frombits(word))

	word = Binary32.Word(1<<22, 128)
	require.Equal(t, float32(3), math.Float32frombits(uint32(word)))
}

func TestIsFinite(t *testing.T) {
	require.True(t, Binary64.IsFinite(math.Float64bits(math.MaxFloat64)))
	require.False(t, Binary64.IsFinite(math.Float64bits(math.Inf(-1))))
	require.False(t, Binary64.IsFinite(math.Float64bits(math.NaN())))

	require.True(t, Binary32.IsFinite(uint64(math.Float32bits(math.MaxFloat32))))
	require.False(t, Binary32.IsFinite(uint64(math.Float32bits(float32(math.Inf(1))))))
}
