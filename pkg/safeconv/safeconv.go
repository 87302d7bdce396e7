// Package safeconv provides checked conversions between the float64 cells
// of linkage matrices and the integer ids and counts they hold.
package safeconv

import "math"

// maxExactFloat is the largest integer a float64 represents exactly.
const maxExactFloat = 1 << 53

// FloatToInt converts v to int when v is a whole number that int can hold
// exactly. NaN and infinities are rejected.
func FloatToInt(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}

	if math.Abs(v) > maxExactFloat {
		return 0, false
	}

	return int(v), true
}

// MustFloatToInt converts v to int, panics when v is not a whole number.
// Use only on matrices that already passed validation.
func MustFloatToInt(v float64) int {
	i, ok := FloatToInt(v)
	if !ok {
		panic("safeconv: float64 is not an exact integer")
	}

	return i
}

// IntToUint64 converts a non-negative count to uint64, clamping negatives
// to zero.
func IntToUint64(v int) uint64 {
	if v < 0 {
		return 0
	}

	return uint64(v)
}
