// Package roundtrip cross-checks the float conversions against an
// independent Reference.
//
// For every bit pattern checked, the formatted text must match the
// reference byte for byte, and parsing that text (with both
// implementations) must give back the original bit pattern. Sweep32 walks
// the binary32 space, every pattern or a stride of it. Sample64 draws
// random binary64 patterns plus a fixed set of edge cases. Both fan the
// work out over a bounded group of goroutines and stop at the first
// mismatch.
package roundtrip
