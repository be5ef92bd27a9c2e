package atof

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/float/integer"
	"github.com/calebcase/float/layout"
	"github.com/calebcase/float/scan"
)

func fromDigits(t *testing.T, s string) (i integer.Int) {
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	require.NoError(t, i.UnmarshalBinary(b.Bytes()))

	return i
}

func reference(t *testing.T, s string, l *layout.Layout) uint64 {
	f, err := strconv.ParseFloat(s, l.Bits)
	if err != nil {
		require.ErrorIs(t, err, strconv.ErrRange, s)
	}

	if l.Bits == 32 {
		return uint64(math.Float32bits(float32(f)))
	}

	return math.Float64bits(f)
}

func parse(t *testing.T, s string, l *layout.Layout) uint64 {
	tok, err := scan.Scan([]byte(s))
	require.NoError(t, err, s)

	return Bits(&tok, l)
}

func TestBits(t *testing.T) {
	type TC struct {
		input string
		bits  int
		word  uint64
		Mark  error
	}

	tcs := []TC{
		{input: "0", bits: 64, word: 0},
		{input: "-0.0", bits: 64, word: 1 << 63},
		{input: "-0.0", bits: 32, word: 1 << 31},
		{input: "1", bits: 64, word: 0x3ff0000000000000},
		{input: "1", bits: 32, word: 0x3f800000},
		{input: "0.1", bits: 64, word: 0x3fb999999999999a},
		{input: "0.1", bits: 32, word: 0x3dcccccd},
		{input: "1e23", bits: 64, word: 0x44b52d02c7e14af6},
		{input: "1.7976931348623157e308", bits: 64, word: 0x7fefffffffffffff},
		{input: "1.7976931348623159e308", bits: 64, word: 0x7ff0000000000000},
		{input: "3.4028235e38", bits: 32, word: 0x7f7fffff},
		{input: "3.4028236e38", bits: 32, word: 0x7f800000},
		{input: "3.5e38", bits: 32, word: 0x7f800000},
		{input: "4.9406564584124654e-324", bits: 64, word: 1},
		{input: "2.4703282292062327e-324", bits: 64, word: 0},
		{input: "2.4703282292062328e-324", bits: 64, word: 1},
		{input: "1e-45", bits: 32, word: 1},
		{input: "7e-46", bits: 32, word: 0},
		{input: "2.2250738585072011e-308", bits: 64, word: 0x000fffffffffffff},
		{input: "2.2250738585072012e-308", bits: 64, word: 0x0010000000000000},
		{input: "9007199254740993", bits: 64, word: 0x4340000000000000},
		{input: "9007199254740995", bits: 64, word: 0x4340000000000002},
		{input: "1e400", bits: 64, word: 0x7ff0000000000000},
		{input: "-1e400", bits: 64, word: 0xfff0000000000000},
		{input: "1e-400", bits: 64, word: 0},
		{input: "inf", bits: 64, word: 0x7ff0000000000000},
		{input: "-Infinity", bits: 32, word: 0xff800000},
		{input: "nan", bits: 64, word: 0x7ff8000000000000},
		{input: "NaN", bits: 32, word: 0x7fc00000},
		{input: "1.0902420340782359E+27", bits: 32, word: 0x6c6174ef},
		{input: "1.0902420340782359E+57", bits: 64, word: 0x4bc63b5437920326},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%s/%d", tc.input, tc.bits), func(t *testing.T) {
			l, err := layout.For(tc.bits)
			require.NoError(t, err, tc.Mark)

			word := parse(t, tc.input, l)
			require.Equal(t, tc.word, word, "got=%#x want=%#x", word, tc.word)

			if !strings.Contains(strings.ToLower(tc.input), "n") {
				require.Equal(t, reference(t, tc.input, l), word)
			}
		})
	}
}

func TestFast(t *testing.T) {
	type TC struct {
		input string
		ok    bool
	}

	tcs := []TC{
		{input: "1.5", ok: true},
		{input: "123e-22", ok: true},
		{input: "1e22", ok: true},
		{input: "1e23", ok: true},
		{input: "1e37", ok: true},
		{input: "123e36", ok: false},
		{input: "1e38", ok: false},
		{input: "1e-23", ok: false},
		{input: "9007199254740993", ok: false},
		{input: "12345678901234567890123", ok: false},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			tok, err := scan.Scan([]byte(tc.input))
			require.NoError(t, err)

			word, ok := fast(&tok, layout.Binary64)
			require.Equal(t, tc.ok, ok)

			if ok {
				require.Equal(t, reference(t, tc.input, layout.Binary64), word)
			}
		})
	}
}

func TestPower(t *testing.T) {
	for q := -342; q <= 308; q++ {
		want := int(math.Floor(float64(q)*math.Log2(10))) + 63
		require.Equal(t, want, power(q), "q=%d", q)
	}
}

func TestPowersOfFive(t *testing.T) {
	for _, q := range []int{-342, -28, -27, -1, 0, 1, 27, 55, 308} {
		p := powersOfFive[q-smallestPowerOfFive]
		require.NotZero(t, p.hi>>63, "q=%d not normalized", q)

		if q < 0 || q > 55 {
			continue
		}

		// Small positive powers are exact after normalization.
		five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(q)), nil)
		shift := 128 - five.BitLen()
		five.Lsh(five, uint(shift))

		got := new(big.Int).SetUint64(p.hi)
		got.Lsh(got, 64)
		got.Or(got, new(big.Int).SetUint64(p.lo))

		require.Equal(t, 0, five.Cmp(got), "q=%d", q)
	}
}

// halfway returns the exact decimal expansion of the midpoint between the
// positive float with bits word and its successor.
func halfway(word uint64, l *layout.Layout) string {
	mant, exp := l.Decompose(word)

	r := new(big.Rat).SetInt(new(big.Int).SetUint64(mant<<1 + 1))
	scale := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(abs(exp-1))))
	if exp-1 < 0 {
		r.Quo(r, scale)
	} else {
		r.Mul(r, scale)
	}

	s := r.FloatString(1200)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func TestHalfway(t *testing.T) {
	type TC struct {
		name string
		word uint64
		l    *layout.Layout
	}

	tcs := []TC{
		{name: "f64 one", word: 0x3ff0000000000000, l: layout.Binary64},
		{name: "f64 odd", word: 0x3ff0000000000001, l: layout.Binary64},
		{name: "f64 large", word: 0x7fe1ccf385ebc8a0, l: layout.Binary64},
		{name: "f64 subnormal", word: 0x0000000000000001, l: layout.Binary64},
		{name: "f64 subnormal odd", word: 0x0000000000000003, l: layout.Binary64},
		{name: "f64 normal boundary", word: 0x000fffffffffffff, l: layout.Binary64},
		{name: "f64 max", word: 0x7fefffffffffffff, l: layout.Binary64},
		{name: "f32 one", word: 0x3f800000, l: layout.Binary32},
		{name: "f32 odd", word: 0x3f800001, l: layout.Binary32},
		{name: "f32 subnormal", word: 0x00000001, l: layout.Binary32},
		{name: "f32 max", word: 0x7f7fffff, l: layout.Binary32},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			mid := halfway(tc.word, tc.l)

			above := mid + "000000000000000000000000000000001"
			if !strings.Contains(mid, ".") {
				above = mid + ".000000000000000000000000000000001"
			}

			inputs := []string{mid, above}
			if strings.Contains(mid, ".") {
				below := mid[:len(mid)-1] + string(mid[len(mid)-1]-1) + "9999999999999999"
				inputs = append(inputs, below)
			}

			for _, input := range inputs {
				want := reference(t, input, tc.l)
				got := parse(t, input, tc.l)
				require.Equal(t, want, got, "input=%s", input)
			}

			// Ties go to even.
			got := parse(t, mid, tc.l)
			require.Zero(t, got&1, "%#x", got)
		})
	}
}

func randomLiteral(rng *rand.Rand, maxDigits, minExp, maxExp int) string {
	n := 1 + rng.Intn(maxDigits)

	var sb strings.Builder
	if rng.Intn(2) == 0 {
		sb.WriteByte('-')
	}

	point := rng.Intn(n + 1)
	for i := 0; i < n; i++ {
		if i == point {
			sb.WriteByte('.')
		}
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}

	fmt.Fprintf(&sb, "e%d", minExp+rng.Intn(maxExp-minExp+1))

	return sb.String()
}

func TestRandom(t *testing.T) {
	type TC struct {
		name      string
		l         *layout.Layout
		maxDigits int
		minExp    int
		maxExp    int
		n         int
	}

	tcs := []TC{
		{name: "f64 short", l: layout.Binary64, maxDigits: 20, minExp: -340, maxExp: 320, n: 20000},
		{name: "f64 long", l: layout.Binary64, maxDigits: 800, minExp: -400, maxExp: 320, n: 2000},
		{name: "f32 short", l: layout.Binary32, maxDigits: 12, minExp: -50, maxExp: 40, n: 20000},
		{name: "f32 long", l: layout.Binary32, maxDigits: 150, minExp: -60, maxExp: 40, n: 2000},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tc.l.Bits + tc.maxDigits)))

			for i := 0; i < tc.n; i++ {
				input := randomLiteral(rng, tc.maxDigits, tc.minExp, tc.maxExp)

				want := reference(t, input, tc.l)
				got := parse(t, input, tc.l)
				require.Equal(t, want, got, "input=%s got=%#x want=%#x", input, got, want)
			}
		})
	}
}

// TestSlow drives the exact path directly from an unrounded moderate
// product, bypassing the fast and moderate decisions.
func TestSlow(t *testing.T) {
	type TC struct {
		name      string
		l         *layout.Layout
		maxDigits int
		minExp    int
		maxExp    int
	}

	tcs := []TC{
		{name: "f64", l: layout.Binary64, maxDigits: 60, minExp: -250, maxExp: 240},
		{name: "f32", l: layout.Binary32, maxDigits: 30, minExp: -30, maxExp: 5},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))

			for i := 0; i < 5000; i++ {
				input := randomLiteral(rng, tc.maxDigits, tc.minExp, tc.maxExp)

				tok, err := scan.Scan([]byte(input))
				require.NoError(t, err)
				if tok.Mantissa == 0 {
					continue
				}

				fp := computeError(tok.Exponent, tok.Mantissa, tc.l)
				fp.Exp -= invalidFP
				fp = slow(&tok, fp, tc.l)

				got := tc.l.Word(fp.Mant, fp.Exp)
				if tok.Negative {
					got |= tc.l.SignMask
				}

				want := reference(t, input, tc.l)
				require.Equal(t, want, got, "input=%s token=%s", input, spew.Sdump(tok))
			}
		})
	}
}

func TestParseMantissa(t *testing.T) {
	type TC struct {
		input string
		max   int
		count int
		want  string
		Mark  error
	}

	tcs := []TC{
		{
			input: "000123.4500",
			max:   769,
			count: 7,
			want:  "1234500",
			Mark:  oops.New("unexpected"),
		},
		{
			input: "0.000000000000000000000000123456789012345678901234567",
			max:   769,
			count: 27,
			want:  "123456789012345678901234567",
			Mark:  oops.New("unexpected"),
		},
		{
			input: "12345678901234567890123456789",
			max:   10,
			count: 11,
			want:  "12345678901",
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1234567890.0000000000000000000000",
			max:   10,
			count: 10,
			want:  "1234567890",
			Mark:  oops.New("unexpected"),
		},
		{
			input: "1234567890.00000000000000000000001",
			max:   10,
			count: 11,
			want:  "12345678901",
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			tok, err := scan.Scan([]byte(tc.input))
			require.NoError(t, err, tc.Mark)

			var digits integer.Int
			count := parseMantissa(&digits, &tok, tc.max)
			require.Equal(t, tc.count, count)

			want := fromDigits(t, tc.want)
			require.Equal(t, 0, want.Cmp(&digits))
		})
	}
}

func TestScientificExponent(t *testing.T) {
	for input, want := range map[string]int{
		"1":          0,
		"12345":      4,
		"0.00123":    -3,
		"9.99e10":    10,
		"123456e-10": -5,
	} {
		tok, err := scan.Scan([]byte(input))
		require.NoError(t, err)
		require.Equal(t, want, scientificExponent(&tok), input)
	}
}
