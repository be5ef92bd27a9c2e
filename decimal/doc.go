// Package decimal renders a decimal significand and exponent as scientific
// notation text.
//
// The digits of a value are:
//
//	number = significand * 10 ^ exponent
//
// Where significand is an unsigned integer without trailing zeros and
// exponent is a base 10 exponent. For example:
//
//	1.23 = 123 * 10^-2
//
// # Grammar
//
// Finite values are written with exactly one digit before the point and the
// exponent adjusted to match:
//
//	text     = [ "-" ] digit [ "." digit { digit } ] "E" [ "-" ] exponent
//	exponent = digit [ digit [ digit ] ]
//
// The point is omitted when there is a single significant digit. Positive
// exponents carry no sign. Zero is written as "0E0" (or "-0E0").
//
// Non-finite values are written as "inf", "-inf" or "NaN". NaN never carries
// a sign.
//
// # Examples
//
//	| Significand       | Exponent | Text                   |
//	|-------------------|----------|------------------------|
//	| 0                 | 0        | 0E0                    |
//	| 1                 | 0        | 1E0                    |
//	| 15                | -1       | 1.5E0                  |
//	| 123               | -5       | 1.23E-3                |
//	| 17976931348623157 | 292      | 1.7976931348623157E308 |
//	| 5                 | -324     | 5E-324                 |
//	|-------------------|----------|------------------------|
//
// # Length
//
// The longest binary32 text is 15 bytes (sign, 9 digits, point, "E", sign
// and 2 exponent digits). The longest binary64 text is 24 bytes (sign, 17
// digits, point, "E", sign and 3 exponent digits).
package decimal
