// Package scan lexes decimal floating-point literals.
//
// A literal has the form
//
//	[+-] digits ['.' [digits]] [(e|E) [+-] digits]
//	[+-] '.' digits [(e|E) [+-] digits]
//	[+-] (inf | infinity | nan)
//
// The non-finite forms are matched without regard to case. A NUL byte ends
// the literal; anything after it is ignored. Any other byte left over after
// the literal is a syntax error.
//
// The scanner accumulates at most 19 significant digits into a uint64. When
// the literal carries more, the token is marked ManyDigits and keeps the raw
// integer and fraction digit spans so the exact path can see every digit.
package scan

import (
	"bytes"

	"github.com/zeebo/errs"
)

// Error is the class of scan errors.
var Error = errs.Class("scan")

// ErrSyntax is returned for malformed literals.
var ErrSyntax = Error.New("invalid syntax")

// Kind classifies a token.
type Kind uint8

// Token kinds.
const (
	Number Kind = iota
	Infinity
	NaN
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	}

	return "unknown"
}

// Token is a lexed decimal literal: the value is Mantissa * 10^Exponent
// when ManyDigits is false.
type Token struct {
	Kind     Kind
	Negative bool

	Mantissa uint64
	Exponent int

	// ManyDigits is set when significant digits were dropped from Mantissa.
	// Integer and Fraction then hold the raw digit spans.
	ManyDigits bool
	Integer    []byte
	Fraction   []byte
}

const (
	maxMantissaDigits = 19
	minNineteenDigits = 1_000_000_000_000_000_000
	exponentClamp     = 0x10000000
)

func isDigit(c byte) bool {
	return c-'0' < 10
}

// Scan lexes b into a token.
func Scan(b []byte) (t Token, err error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	if len(b) == 0 {
		return t, ErrSyntax
	}

	p := 0
	switch b[0] {
	case '-':
		t.Negative = true
		p++
	case '+':
		p++
	}

	if p == len(b) {
		return t, ErrSyntax
	}

	if c := b[p]; !isDigit(c) && c != '.' {
		return special(b[p:], t.Negative)
	}

	start := p

	// Integer digits.
	var mant uint64
	intStart := p
	for len(b)-p >= 8 && isEightDigits(load(b[p:])) {
		mant = mant*100_000_000 + uint64(parseEightDigits(load(b[p:])))
		p += 8
	}
	for p < len(b) && isDigit(b[p]) {
		mant = mant*10 + uint64(b[p]-'0')
		p++
	}
	t.Integer = b[intStart:p]
	digits := p - intStart

	// Fraction digits.
	exp := 0
	if p < len(b) && b[p] == '.' {
		p++
		fracStart := p
		for len(b)-p >= 8 && isEightDigits(load(b[p:])) {
			mant = mant*100_000_000 + uint64(parseEightDigits(load(b[p:])))
			p += 8
		}
		for p < len(b) && isDigit(b[p]) {
			mant = mant*10 + uint64(b[p]-'0')
			p++
		}
		t.Fraction = b[fracStart:p]
		exp = -len(t.Fraction)
		digits += len(t.Fraction)
	}

	if digits == 0 {
		return t, ErrSyntax
	}

	// Exponent.
	expNumber := 0
	if p < len(b) && b[p]|0x20 == 'e' {
		p++

		negExp := false
		if p < len(b) {
			switch b[p] {
			case '-':
				negExp = true
				p++
			case '+':
				p++
			}
		}

		if p == len(b) || !isDigit(b[p]) {
			return t, ErrSyntax
		}

		for p < len(b) && isDigit(b[p]) {
			if expNumber < exponentClamp {
				expNumber = expNumber*10 + int(b[p]-'0')
			}
			p++
		}

		if negExp {
			expNumber = -expNumber
		}
		exp += expNumber
	}

	if p != len(b) {
		return t, ErrSyntax
	}

	t.Mantissa = mant
	t.Exponent = exp

	if digits <= maxMantissaDigits {
		return t, nil
	}

	// Leading zeros (and the point between them) are not significant.
	for q := start; q < len(b); q++ {
		c := b[q]
		if c == '0' {
			digits--
		} else if c != '.' {
			break
		}
	}

	if digits <= maxMantissaDigits {
		return t, nil
	}

	t.ManyDigits = true

	// Rebuild a 19 digit mantissa from the spans and recompute the exponent
	// relative to it.
	mant = 0
	rest := t.Integer
	for len(rest) > 0 && mant < minNineteenDigits {
		mant = mant*10 + uint64(rest[0]-'0')
		rest = rest[1:]
	}

	if mant >= minNineteenDigits {
		exp = len(rest)
	} else {
		rest = t.Fraction
		for len(rest) > 0 && mant < minNineteenDigits {
			mant = mant*10 + uint64(rest[0]-'0')
			rest = rest[1:]
		}
		exp = -(len(t.Fraction) - len(rest))
	}

	t.Mantissa = mant
	t.Exponent = exp + expNumber

	return t, nil
}

func special(b []byte, negative bool) (t Token, err error) {
	t.Negative = negative

	switch {
	case equalFold(b, "inf"), equalFold(b, "infinity"):
		t.Kind = Infinity
	case equalFold(b, "nan"):
		t.Kind = NaN
	default:
		return t, ErrSyntax
	}

	return t, nil
}

func equalFold(b []byte, lower string) bool {
	if len(b) != len(lower) {
		return false
	}

	for i := range b {
		if b[i]|0x20 != lower[i] {
			return false
		}
	}

	return true
}
