package roundtrip

import (
	"errors"
	"strconv"
	"strings"
)

// Reference is an independent implementation of the conversions with the
// same text grammar.
type Reference interface {
	Parse32(b []byte) (float32, error)
	Parse64(b []byte) (float64, error)
	Format32(f float32) string
	Format64(f float64) string
}

// Strconv is a Reference backed by the standard library.
type Strconv struct{}

var _ Reference = Strconv{}

// Parse32 implements Reference. Out of range literals are not errors.
func (Strconv) Parse32(b []byte) (float32, error) {
	f, err := strconv.ParseFloat(string(b), 32)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}

	return float32(f), err
}

// Parse64 implements Reference. Out of range literals are not errors.
func (Strconv) Parse64(b []byte) (float64, error) {
	f, err := strconv.ParseFloat(string(b), 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}

	return f, err
}

// Format32 implements Reference.
func (Strconv) Format32(f float32) string {
	return normalize(strconv.FormatFloat(float64(f), 'e', -1, 32))
}

// Format64 implements Reference.
func (Strconv) Format64(f float64) string {
	return normalize(strconv.FormatFloat(f, 'e', -1, 64))
}

// normalize rewrites strconv's "1.5e+00" form as "1.5E0".
func normalize(s string) string {
	switch s {
	case "+Inf":
		return "inf"
	case "-Inf":
		return "-inf"
	case "NaN":
		return "NaN"
	}

	mant, exp, _ := strings.Cut(s, "e")

	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mant + "E" + strconv.Itoa(e)
}
