package integer

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func toBig(t *testing.T, i *Int) *big.Int {
	data, err := i.MarshalBinary()
	require.NoError(t, err)

	return new(big.Int).SetBytes(data)
}

func fromBig(t *testing.T, b *big.Int) (i Int) {
	require.NoError(t, i.UnmarshalBinary(b.Bytes()))

	return i
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		v    *big.Int
		data []byte
	}

	tcs := []TC{
		{
			name: "0",
			v:    big.NewInt(0),
			data: []byte{0b0000_0000},
		},
		{
			name: "1",
			v:    big.NewInt(1),
			data: []byte{0b0000_0001},
		},
		{
			name: "256",
			v:    big.NewInt(256),
			data: []byte{0b0000_0001, 0b0000_0000},
		},
		{
			name: "2^64",
			v:    new(big.Int).Lsh(big.NewInt(1), 64),
			data: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			i := fromBig(t, tc.v)

			data, err := i.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data)

			var j Int
			require.NoError(t, j.UnmarshalBinary(data))
			require.Equal(t, 0, i.Cmp(&j))
		})
	}
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		name string
		x    *big.Int
		op   func(i *Int) error
		want func(b *big.Int) *big.Int
		Mark error
	}

	pow := func(base, exp int64) *big.Int {
		return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
	}

	seed, _ := new(big.Int).SetString("123456789012345678901234567890123456789", 10)

	tcs := []TC{
		{
			name: "mul small carry",
			x:    new(big.Int).SetUint64(^uint64(0)),
			op:   func(i *Int) error { return i.MulSmall(^uint64(0)) },
			want: func(b *big.Int) *big.Int { return b.Mul(b, new(big.Int).SetUint64(^uint64(0))) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "mul small zero",
			x:    seed,
			op:   func(i *Int) error { return i.MulSmall(0) },
			want: func(b *big.Int) *big.Int { return b.SetInt64(0) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "add small carry chain",
			x:    new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1)),
			op:   func(i *Int) error { return i.AddSmall(1) },
			want: func(b *big.Int) *big.Int { return b.Add(b, big.NewInt(1)) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "add small to zero",
			x:    big.NewInt(0),
			op:   func(i *Int) error { return i.AddSmall(7) },
			want: func(b *big.Int) *big.Int { return b.SetInt64(7) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "mul large",
			x:    seed,
			op:   func(i *Int) error { return i.MulLarge(largePow5[:]) },
			want: func(b *big.Int) *big.Int { return b.Mul(b, pow(5, largePow5Step)) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "shl bits",
			x:    seed,
			op:   func(i *Int) error { return i.Shl(13) },
			want: func(b *big.Int) *big.Int { return b.Lsh(b, 13) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "shl limbs",
			x:    seed,
			op:   func(i *Int) error { return i.Shl(128) },
			want: func(b *big.Int) *big.Int { return b.Lsh(b, 128) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "shl mixed",
			x:    seed,
			op:   func(i *Int) error { return i.Shl(1000) },
			want: func(b *big.Int) *big.Int { return b.Lsh(b, 1000) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "pow5",
			x:    big.NewInt(3),
			op:   func(i *Int) error { return i.Pow5(1111) },
			want: func(b *big.Int) *big.Int { return b.Mul(b, pow(5, 1111)) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "pow5 small remainder",
			x:    big.NewInt(1),
			op:   func(i *Int) error { return i.Pow5(27 + 13) },
			want: func(b *big.Int) *big.Int { return b.Mul(b, pow(5, 40)) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "pow10",
			x:    seed,
			op:   func(i *Int) error { return i.Pow10(308) },
			want: func(b *big.Int) *big.Int { return b.Mul(b, pow(10, 308)) },
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			i := fromBig(t, tc.x)

			err := tc.op(&i)
			require.NoError(t, err, tc.Mark)

			want := tc.want(new(big.Int).Set(tc.x))
			got := toBig(t, &i)
			require.Equal(t, 0, want.Cmp(got), "want=%s got=%s", want, got)
			require.Equal(t, want.BitLen(), i.BitLen())

			if i.n > 0 {
				require.NotZero(t, i.limbs[i.n-1], "not normalized: %s", spew.Sdump(i.limbs[:i.n]))
			}
		})
	}
}

func TestRandomMul(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 200; n++ {
		x := make([]uint64, 1+rng.Intn(20))
		y := make([]uint64, 1+rng.Intn(20))
		for k := range x {
			x[k] = rng.Uint64()
		}
		for k := range y {
			y[k] = rng.Uint64()
		}

		bx := limbsToBig(x)
		by := limbsToBig(y)

		i := fromBig(t, bx)
		require.NoError(t, i.MulLarge(y))

		want := new(big.Int).Mul(bx, by)
		require.Equal(t, 0, want.Cmp(toBig(t, &i)), fmt.Sprintf("case %d", n))
	}
}

func limbsToBig(limbs []uint64) *big.Int {
	b := new(big.Int)
	for k := len(limbs) - 1; k >= 0; k-- {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(limbs[k]))
	}

	return b
}

func TestHi64(t *testing.T) {
	type TC struct {
		name      string
		x         *big.Int
		v         uint64
		truncated bool
	}

	parse := func(s string) *big.Int {
		b, ok := new(big.Int).SetString(s, 0)
		if !ok {
			panic(s)
		}

		return b
	}

	tcs := []TC{
		{
			name: "zero",
			x:    big.NewInt(0),
		},
		{
			name: "one limb",
			x:    big.NewInt(1),
			v:    1 << 63,
		},
		{
			name: "two limbs exact",
			x:    parse("0x1_8000000000000000"),
			v:    0xC000000000000000,
		},
		{
			name:      "two limbs truncated",
			x:         parse("0x1_8000000000000001"),
			v:         0xC000000000000000,
			truncated: true,
		},
		{
			name:      "three limbs low bit",
			x:         parse("0xffffffffffffffff_0000000000000000_0000000000000001"),
			v:         0xffffffffffffffff,
			truncated: true,
		},
		{
			name: "three limbs aligned",
			x:    parse("0xffffffffffffffff_0000000000000000_0000000000000000"),
			v:    0xffffffffffffffff,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			i := fromBig(t, tc.x)

			v, truncated := i.Hi64()
			require.Equal(t, tc.v, v, "%#x", v)
			require.Equal(t, tc.truncated, truncated)
		})
	}
}

func TestCmp(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(7)
	c := FromUint64(1)
	require.NoError(t, c.Shl(64))

	require.Equal(t, -1, a.Cmp(&b))
	require.Equal(t, 1, b.Cmp(&a))
	require.Equal(t, 0, a.Cmp(&a))
	require.Equal(t, 1, c.Cmp(&b))

	var zero Int
	require.Zero(t, zero.n)
	require.Equal(t, -1, zero.Cmp(&a))
}

func TestCapacity(t *testing.T) {
	i := FromUint64(1)
	require.NoError(t, i.Shl(Limbs*64-1))
	require.Equal(t, Limbs, i.n)

	before := i

	err := i.MulSmall(2)
	require.Error(t, err)
	require.Equal(t, before, i)

	err = i.Shl(1)
	require.Error(t, err)
	require.Equal(t, before, i)

	err = i.MulLarge([]uint64{0, 1})
	require.Error(t, err)
	require.Equal(t, before, i)

	require.NoError(t, i.AddSmall(1))
	require.Equal(t, Limbs, i.n)

	var j Int
	err = j.UnmarshalBinary(make([]byte, Limbs*8+1))
	require.NoError(t, err)
	require.Zero(t, j.n)

	data := make([]byte, Limbs*8+1)
	data[0] = 1
	require.Error(t, j.UnmarshalBinary(data))
}
