// Package float converts between IEEE-754 binary32/binary64 values and
// decimal text.
//
// Parsing is correctly rounded: the result is the representable value
// nearest to the exact decimal, ties to even, no matter how many digits the
// literal carries. Formatting is shortest: the text has the fewest
// significant digits that still parse back to the identical bit pattern.
//
// # Parse Grammar
//
//	[+-] digits ['.' [digits]] [(e|E) [+-] digits]
//	[+-] '.' digits [(e|E) [+-] digits]
//	[+-] (inf | infinity | nan)
//
// A NUL byte ends the literal. Leading or trailing whitespace is rejected.
//
// # Format Grammar
//
//	[-] digit ['.' digits] 'E' [-] digits
//
// Zero formats as "0E0" or "-0E0". Infinities format as "inf" and "-inf";
// NaN formats as "NaN" with no sign.
//
// # Examples
//
//	| Input                    | Width | Output                  |
//	|--------------------------|-------|-------------------------|
//	| 0.1                      | 64    | 1E-1                    |
//	| 1.0902420340782359E+57   | 64    | 1.0902420340782359E57   |
//	| 1.0902420340782359E+27   | 32    | 1.09024205E27           |
//	| -0.0                     | 64    | -0E0                    |
//	| 1e400                    | 64    | inf                     |
//	|--------------------------|-------|-------------------------|
//
// None of the Parse or Format functions allocate, and all of them are safe
// for concurrent use.
package float
