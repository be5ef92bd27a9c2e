package integer

import (
	"encoding/binary"
	"math/bits"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of integer errors.
var Error = errs.Class("integer")

// ErrCapacity is returned when a result would not fit in Limbs limbs.
var ErrCapacity = Error.New("capacity exceeded")

const (
	// Bits is the nominal capacity of an Int.
	Bits = 4000

	// Limbs is the number of 64-bit limbs backing an Int.
	Limbs = Bits / 64
)

// Int is a non-negative integer with a fixed capacity. The zero value is 0.
//
// Limbs are stored least significant first. The top limb is never zero; an
// Int with no limbs is zero.
type Int struct {
	limbs [Limbs]uint64
	n     int
}

// FromUint64 returns x as an Int.
func FromUint64(x uint64) (i Int) {
	i.SetUint64(x)

	return i
}

// SetUint64 sets i to x.
func (i *Int) SetUint64(x uint64) {
	i.n = 0
	if x != 0 {
		i.limbs[0] = x
		i.n = 1
	}
}

func (i *Int) normalize() {
	for i.n > 0 && i.limbs[i.n-1] == 0 {
		i.n--
	}
}

// commit runs fn in place when growing by grow limbs can never exceed the
// capacity and on a scratch copy otherwise, so a failed operation leaves i
// untouched.
func (i *Int) commit(grow int, fn func(*Int) error) error {
	if i.n+grow <= Limbs {
		return fn(i)
	}

	scratch := *i
	err := fn(&scratch)
	if err != nil {
		return err
	}
	*i = scratch

	return nil
}

func (i *Int) push(limb uint64) error {
	if i.n == Limbs {
		return oops.Trace(ErrCapacity)
	}

	i.limbs[i.n] = limb
	i.n++

	return nil
}

// MulSmall sets i to i*y.
func (i *Int) MulSmall(y uint64) error {
	return i.commit(1, func(i *Int) error {
		var carry uint64
		for k := 0; k < i.n; k++ {
			hi, lo := bits.Mul64(i.limbs[k], y)
			lo, c := bits.Add64(lo, carry, 0)
			i.limbs[k] = lo
			carry = hi + c
		}

		if carry != 0 {
			err := i.push(carry)
			if err != nil {
				return err
			}
		}

		i.normalize()

		return nil
	})
}

// AddSmall sets i to i+y.
func (i *Int) AddSmall(y uint64) error {
	return i.commit(1, func(i *Int) error {
		carry := y
		for k := 0; k < i.n && carry != 0; k++ {
			i.limbs[k], carry = bits.Add64(i.limbs[k], carry, 0)
		}

		if carry != 0 {
			return i.push(carry)
		}

		return nil
	})
}

// MulLarge sets i to i*y where y is a little-endian limb sequence. The
// product is accumulated with schoolbook long multiplication.
func (i *Int) MulLarge(y []uint64) error {
	switch len(y) {
	case 0:
		i.n = 0

		return nil
	case 1:
		return i.MulSmall(y[0])
	}

	if i.n == 0 {
		return nil
	}

	var z [2 * Limbs]uint64
	for a := 0; a < i.n; a++ {
		x := i.limbs[a]
		if x == 0 {
			continue
		}

		var carry uint64
		for b, yb := range y {
			if a+b >= len(z) {
				return oops.Trace(ErrCapacity)
			}

			hi, lo := bits.Mul64(x, yb)

			var c uint64
			lo, c = bits.Add64(lo, z[a+b], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			z[a+b] = lo
			carry = hi
		}

		if a+len(y) < len(z) {
			z[a+len(y)] = carry
		} else if carry != 0 {
			return oops.Trace(ErrCapacity)
		}
	}

	n := i.n + len(y)
	if n > len(z) {
		n = len(z)
	}
	for n > 0 && z[n-1] == 0 {
		n--
	}

	if n > Limbs {
		return oops.Trace(ErrCapacity)
	}

	copy(i.limbs[:], z[:n])
	i.n = n

	return nil
}

// Shl sets i to i << n.
func (i *Int) Shl(n uint) error {
	if i.n == 0 {
		return nil
	}

	whole := int(n / 64)
	rem := n % 64

	return i.commit(whole+1, func(i *Int) error {
		if rem != 0 {
			var prev uint64
			for k := 0; k < i.n; k++ {
				limb := i.limbs[k]
				i.limbs[k] = limb<<rem | prev>>(64-rem)
				prev = limb
			}

			carry := prev >> (64 - rem)
			if carry != 0 {
				err := i.push(carry)
				if err != nil {
					return err
				}
			}
		}

		if whole != 0 {
			if i.n+whole > Limbs {
				return oops.Trace(ErrCapacity)
			}

			copy(i.limbs[whole:i.n+whole], i.limbs[:i.n])
			for k := 0; k < whole; k++ {
				i.limbs[k] = 0
			}
			i.n += whole
		}

		return nil
	})
}

// BitLen returns the number of bits required to represent i.
func (i *Int) BitLen() int {
	if i.n == 0 {
		return 0
	}

	return (i.n-1)*64 + bits.Len64(i.limbs[i.n-1])
}

// Hi64 returns the 64 most significant bits of i, left aligned, and whether
// any bit below them is set.
func (i *Int) Hi64() (v uint64, truncated bool) {
	switch i.n {
	case 0:
		return 0, false
	case 1:
		r0 := i.limbs[0]

		return r0 << bits.LeadingZeros64(r0), false
	}

	r0 := i.limbs[i.n-1]
	r1 := i.limbs[i.n-2]

	shift := uint(bits.LeadingZeros64(r0))
	if shift == 0 {
		v = r0
	} else {
		v = r0<<shift | r1>>(64-shift)
	}

	truncated = r1<<shift != 0
	for k := i.n - 3; k >= 0 && !truncated; k-- {
		truncated = i.limbs[k] != 0
	}

	return v, truncated
}

// Cmp returns -1, 0 or +1 as i is less than, equal to or greater than j.
func (i *Int) Cmp(j *Int) int {
	switch {
	case i.n > j.n:
		return 1
	case i.n < j.n:
		return -1
	}

	for k := i.n - 1; k >= 0; k-- {
		switch {
		case i.limbs[k] > j.limbs[k]:
			return 1
		case i.limbs[k] < j.limbs[k]:
			return -1
		}
	}

	return 0
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// big-endian magnitude without leading zero bytes.
func (i Int) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, i.n*8)

	var buf [8]byte
	for k := i.n - 1; k >= 0; k-- {
		binary.BigEndian.PutUint64(buf[:], i.limbs[k])
		data = append(data, buf[:]...)
	}

	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}

	n := (len(data) + 7) / 8
	if n > Limbs {
		return oops.Trace(ErrCapacity)
	}

	*i = Int{}
	for k := 0; k < n; k++ {
		end := len(data) - k*8
		start := end - 8
		if start < 0 {
			start = 0
		}

		var limb uint64
		for _, b := range data[start:end] {
			limb = limb<<8 | uint64(b)
		}
		i.limbs[k] = limb
	}
	i.n = n
	i.normalize()

	return nil
}
