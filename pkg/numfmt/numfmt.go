// Package numfmt rounds and formats chart values the way labels show them:
// shortest round-trip decimals, always with a fractional part.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Exponent bounds outside of which Format switches to scientific notation.
const (
	minFixedExponent = -4
	maxFixedExponent = 16
)

// Round rounds v to the given number of decimal places.
// The value is scaled, rounded half to even and scaled back, so binary
// representation error decides ties: Round(1.005, 2) is 1.0.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	scale := math.Pow(10, float64(decimals))
	scaled := v * scale

	if math.IsInf(scaled, 0) {
		return v
	}

	return math.RoundToEven(scaled) / scale
}

// Format renders v as label text.
//
//	Format(2)       == "2.0"
//	Format(3.5)     == "3.5"
//	Format(1e-05)   == "1e-05"
//	Format(1e16)    == "1e+16"
//	Format(NaN)     == "nan"
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)

	exp := exponent(sci)
	if exp < minFixedExponent || exp >= maxFixedExponent {
		return sci
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}

// RoundFormat rounds v to decimals and formats the result.
func RoundFormat(v float64, decimals int) string {
	return Format(Round(v, decimals))
}

func exponent(sci string) int {
	idx := strings.IndexByte(sci, 'e')
	if idx < 0 {
		return 0
	}

	exp, err := strconv.Atoi(sci[idx+1:])
	if err != nil {
		return 0
	}

	return exp
}
