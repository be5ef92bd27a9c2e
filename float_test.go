package float

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// digitCount returns the number of significant digits in text of the form
// produced by Format or strconv's 'e' format.
func digitCount(s string) int {
	s = strings.TrimPrefix(s, "-")
	mant, _, _ := strings.Cut(strings.ToLower(s), "e")

	return len(strings.Replace(mant, ".", "", 1))
}

func TestParse64(t *testing.T) {
	type TC struct {
		input string
		value float64
		Mark  error
	}

	tcs := []TC{
		{
			input: "0",
			value: 0,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1",
			value: 1,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "+1.5",
			value: 1.5,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "-2.5e-3",
			value: -2.5e-3,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1.0902420340782359E+57",
			value: 1.0902420340782359e57,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1.7976931348623157E308",
			value: math.MaxFloat64,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "4.9406564584124654E-324",
			value: math.SmallestNonzeroFloat64,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "2.4703282292062327e-324",
			value: 0,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "2.4703282292062328e-324",
			value: math.SmallestNonzeroFloat64,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1e400",
			value: math.Inf(1),
			Mark:  oops.New("unexpected"),
		},
		{
			input: "-1e400",
			value: math.Inf(-1),
			Mark:  oops.New("unexpected"),
		},
		{
			input: "9007199254740993",
			value: 9007199254740992,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "9007199254740993.0000000000000000000000000001",
			value: 9007199254740994,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "-Infinity",
			value: math.Inf(-1),
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1.5\x00junk",
			value: 1.5,
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			v, err := Parse64([]byte(tc.input))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, math.Float64bits(tc.value), math.Float64bits(v), tc.Mark)
		})
	}
}

func TestParse32(t *testing.T) {
	type TC struct {
		input string
		value float32
		Mark  error
	}

	tcs := []TC{
		{
			input: "0.1",
			value: 0.1,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1.0902420340782359E+27",
			value: 1.0902420340782359e27,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "3.4028235e38",
			value: math.MaxFloat32,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "3.4028236e38",
			value: float32(math.Inf(1)),
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1e-45",
			value: math.SmallestNonzeroFloat32,
			Mark:  oops.New("unexpected"),
		},
		{
			input: "16777217",
			value: 16777216,
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			v, err := Parse32([]byte(tc.input))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, math.Float32bits(tc.value), math.Float32bits(v), tc.Mark)
		})
	}
}

func TestNegativeZero(t *testing.T) {
	v, err := Parse64([]byte("-0.0"))
	require.NoError(t, err)
	require.True(t, math.Signbit(v))
	require.Equal(t, 0.0, v)

	f, err := Parse32([]byte("-0.0"))
	require.NoError(t, err)
	require.True(t, math.Signbit(float64(f)))

	require.Equal(t, "-0E0", FormatFloat(v, 64))
	require.Equal(t, "0E0", FormatFloat(0, 64))
}

func TestNaN(t *testing.T) {
	v, err := Parse64([]byte("nan"))
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	v, err = Parse64([]byte("-NaN"))
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	f, err := Parse32([]byte("NAN"))
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(f)))
}

func TestFormat64(t *testing.T) {
	type TC struct {
		value float64
		text  string
		Mark  error
	}

	tcs := []TC{
		{value: 0, text: "0E0", Mark: oops.New("unexpected")},
		{value: 1, text: "1E0", Mark: oops.New("unexpected")},
		{value: 0.1, text: "1E-1", Mark: oops.New("unexpected")},
		{value: -1.5, text: "-1.5E0", Mark: oops.New("unexpected")},
		{value: 123456.789, text: "1.23456789E5", Mark: oops.New("unexpected")},
		{value: 1e23, text: "1E23", Mark: oops.New("unexpected")},
		{value: math.MaxFloat64, text: "1.7976931348623157E308", Mark: oops.New("unexpected")},
		{value: -math.MaxFloat64, text: "-1.7976931348623157E308", Mark: oops.New("unexpected")},
		{value: math.SmallestNonzeroFloat64, text: "5E-324", Mark: oops.New("unexpected")},
		{value: -0x1p-1022, text: "-2.2250738585072014E-308", Mark: oops.New("unexpected")},
		{value: 1.0902420340782359e57, text: "1.0902420340782359E57", Mark: oops.New("unexpected")},
		{value: math.Inf(1), text: "inf", Mark: oops.New("unexpected")},
		{value: math.Inf(-1), text: "-inf", Mark: oops.New("unexpected")},
		{value: math.NaN(), text: "NaN", Mark: oops.New("unexpected")},
		{value: math.Float64frombits(0xfff8_0000_0000_0001), text: "NaN", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.text, func(t *testing.T) {
			var buf [MaxLen64]byte

			n := Format64(&buf, tc.value)
			require.Equal(t, tc.text, string(buf[:n]), tc.Mark)
		})
	}
}

func TestFormat32(t *testing.T) {
	type TC struct {
		value float32
		text  string
		Mark  error
	}

	tcs := []TC{
		{value: 0, text: "0E0", Mark: oops.New("unexpected")},
		{value: 0.1, text: "1E-1", Mark: oops.New("unexpected")},
		{value: math.MaxFloat32, text: "3.4028235E38", Mark: oops.New("unexpected")},
		{value: -math.MaxFloat32, text: "-3.4028235E38", Mark: oops.New("unexpected")},
		{value: math.SmallestNonzeroFloat32, text: "1E-45", Mark: oops.New("unexpected")},
		{value: -0x1.fffffep-127, text: "-1.1754942E-38", Mark: oops.New("unexpected")},
		{value: 1.0902420340782359e27, text: "1.09024205E27", Mark: oops.New("unexpected")},
		{value: float32(math.Inf(-1)), text: "-inf", Mark: oops.New("unexpected")},
		{value: float32(math.NaN()), text: "NaN", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.text, func(t *testing.T) {
			var buf [MaxLen32]byte

			n := Format32(&buf, tc.value)
			require.Equal(t, tc.text, string(buf[:n]), tc.Mark)
		})
	}
}

func TestBoundaryLiterals(t *testing.T) {
	v64, err := Parse64([]byte("1.0902420340782359E+57"))
	require.NoError(t, err)
	require.False(t, math.IsInf(v64, 0))

	back64, err := Parse64([]byte(FormatFloat(v64, 64)))
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(v64), math.Float64bits(back64))

	v32, err := Parse32([]byte("1.0902420340782359E+27"))
	require.NoError(t, err)
	require.False(t, math.IsInf(float64(v32), 0))

	back32, err := Parse32([]byte(FormatFloat(float64(v32), 32)))
	require.NoError(t, err)
	require.Equal(t, math.Float32bits(v32), math.Float32bits(back32))
}

func TestRoundTrip64(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var buf [MaxLen64]byte

	for i := 0; i < 200_000; i++ {
		word := rng.Uint64()
		v := math.Float64frombits(word)
		if math.IsNaN(v) {
			continue
		}

		n := Format64(&buf, v)
		text := string(buf[:n])

		back, err := Parse64(buf[:n])
		require.NoError(t, err, text)
		require.Equal(t, word, math.Float64bits(back), text)

		if !math.IsInf(v, 0) && v != 0 {
			want := strconv.FormatFloat(v, 'e', -1, 64)
			require.Equal(t, digitCount(want), digitCount(text), spew.Sdump(word, want, text))
		}
	}
}

func TestRoundTrip32(t *testing.T) {
	var buf [MaxLen32]byte

	// Stride through the positive and negative bit patterns; the roundtrip
	// package sweeps them all.
	for word := uint64(0); word < 1<<32; word += 7919 {
		v := math.Float32frombits(uint32(word))
		if math.IsNaN(float64(v)) {
			continue
		}

		n := Format32(&buf, v)
		text := string(buf[:n])

		back, err := Parse32(buf[:n])
		require.NoError(t, err, text)
		require.Equal(t, uint32(word), math.Float32bits(back), text)

		if !math.IsInf(float64(v), 0) && v != 0 {
			want := strconv.FormatFloat(float64(v), 'e', -1, 32)
			require.Equal(t, digitCount(want), digitCount(text), spew.Sdump(word, want, text))
		}
	}
}

func TestLongLiterals(t *testing.T) {
	rng := rand.New(rand.NewSource(800))

	for i := 0; i < 2_000; i++ {
		var sb strings.Builder

		sb.WriteByte(byte('1' + rng.Intn(9)))
		sb.WriteByte('.')

		digits := 40 + rng.Intn(760)
		for j := 0; j < digits; j++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}

		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(rng.Intn(640) - 330))

		s := sb.String()

		for _, bitSize := range []int{32, 64} {
			want, err := strconv.ParseFloat(s, bitSize)
			if err != nil {
				require.ErrorIs(t, err, strconv.ErrRange, s)
			}

			got, err := ParseFloat(s, bitSize)
			require.NoError(t, err, s)
			require.Equal(t, math.Float64bits(want), math.Float64bits(got), s)
		}
	}
}

func TestMalformed(t *testing.T) {
	inputs := []string{
		"",
		"-",
		".",
		"1e",
		"1e+",
		"+",
		"-.",
		"e1",
		"1.2.3",
		"0x10",
		"1_000",
		" 1",
		"1 ",
		"infinite",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse64([]byte(input))
			require.ErrorIs(t, err, ErrSyntax)
			require.True(t, Error.Has(err))

			_, err = Parse32([]byte(input))
			require.ErrorIs(t, err, ErrSyntax)

			_, err = ParseFloat(input, 64)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestBitSize(t *testing.T) {
	_, err := ParseFloat("1", 16)
	require.ErrorIs(t, err, ErrBitSize)

	v, err := ParseFloat("0.1", 32)
	require.NoError(t, err)
	require.Equal(t, float64(float32(0.1)), v)
}

func TestAppendFloat(t *testing.T) {
	out := AppendFloat([]byte("v="), 0.1, 32)
	require.Equal(t, "v=1E-1", string(out))

	out = AppendFloat(nil, 0.3, 64)
	require.Equal(t, "3E-1", string(out))
}

func TestAllocations(t *testing.T) {
	input := []byte("1.0902420340782359E+57")

	var buf [MaxLen64]byte

	allocs := testing.AllocsPerRun(100, func() {
		v, _ := Parse64(input)
		Format64(&buf, v)
	})
	require.Zero(t, allocs)
}
