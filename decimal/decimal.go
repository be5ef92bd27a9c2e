package decimal

// MaxLen is the longest text Write produces for any Digits with at most 20
// significant digits and an exponent magnitude below 1000.
const MaxLen = 1 + 20 + 1 + 1 + 1 + 3

// radix100 holds the two digit strings "00" through "99" back to back.
const radix100 = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Digits is a decimal number: Significand * 10^Exponent.
type Digits struct {
	Significand uint64
	Exponent    int
}

// Trim returns d with trailing zeros moved from the significand into the
// exponent.
func (d Digits) Trim() Digits {
	if d.Significand == 0 {
		return Digits{}
	}

	for d.Significand%100 == 0 {
		d.Significand /= 100
		d.Exponent += 2
	}
	if d.Significand%10 == 0 {
		d.Significand /= 10
		d.Exponent++
	}

	return d
}

// Len returns the number of significant digits in d.
func (d Digits) Len() int {
	n := 1
	for v := d.Significand; v >= 10; v /= 10 {
		n++
	}

	return n
}

// Write renders d into buf and returns the number of bytes written. Trailing
// zeros in the significand are dropped. buf must be long enough for the
// text; MaxLen always suffices.
func Write(buf []byte, negative bool, d Digits) int {
	d = d.Trim()

	n := 0
	if negative {
		buf[n] = '-'
		n++
	}

	if d.Significand == 0 {
		return n + copy(buf[n:], "0E0")
	}

	// Digits go right to left starting one byte in, leaving room for the
	// leading digit to move in front of the point.
	count := d.Len()
	end := n + 1 + count
	writeDigits(buf[n+1:end], d.Significand)

	buf[n] = buf[n+1]
	if count > 1 {
		buf[n+1] = '.'
		n = end
	} else {
		n++
	}

	buf[n] = 'E'
	n++

	exp := d.Exponent + count - 1
	if exp < 0 {
		buf[n] = '-'
		n++
		exp = -exp
	}

	return n + writeExponent(buf[n:], exp)
}

// writeDigits fills out with the decimal digits of v, two at a time from the
// right. len(out) must be the digit count of v.
func writeDigits(out []byte, v uint64) {
	i := len(out)

	for v >= 100 {
		r := (v % 100) * 2
		v /= 100

		i -= 2
		out[i] = radix100[r]
		out[i+1] = radix100[r+1]
	}

	if v < 10 {
		out[i-1] = byte('0' + v)

		return
	}

	out[i-2] = radix100[v*2]
	out[i-1] = radix100[v*2+1]
}

// writeExponent writes a non-negative exponent below 1000 and returns the
// number of bytes written.
func writeExponent(out []byte, exp int) int {
	switch {
	case exp >= 100:
		// exp*6554>>16 is exp/10 for exp < 1000; the low 16 bits times 5
		// shifted by 15 recover the last digit.
		prod := uint32(exp) * 6554
		d1 := prod >> 16
		d2 := ((prod & 0xffff) * 5) >> 15

		out[0] = radix100[d1*2]
		out[1] = radix100[d1*2+1]
		out[2] = byte('0' + d2)

		return 3
	case exp >= 10:
		out[0] = radix100[exp*2]
		out[1] = radix100[exp*2+1]

		return 2
	}

	out[0] = byte('0' + exp)

	return 1
}

// WriteSpecial renders a non-finite value into buf and returns the number of
// bytes written. buf must hold at least 4 bytes.
func WriteSpecial(buf []byte, negative, nan bool) int {
	switch {
	case nan:
		return copy(buf, "NaN")
	case negative:
		return copy(buf, "-inf")
	}

	return copy(buf, "inf")
}
