// File: format.go
// Title: Float Rounding and Formatting
// Description: Scalar helpers used by Complex: decimal rounding with round half
//              to even on the exact binary value, and the shortest round-trip
//              float rendering used by String.
// Author: idmagic
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strconv"
)

// Scientific notation is used outside [sciLow, sciHigh)
const (
	sciLow  = 1e-4
	sciHigh = 1e16
)

// RoundFloat rounds f to places decimal digits. Ties are resolved on the
// exact binary value and go to the even digit, so RoundFloat(2.675, 2) is
// 2.67 because 2.675 is stored slightly below the tie. A negative places
// rounds to tens, hundreds and so on. NaN and infinities are returned as is.
func RoundFloat(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	if places < 0 {
		p := math.Pow10(-places)
		return math.RoundToEven(f/p) * p
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', places, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// FormatFloat renders f in the shortest form that parses back to f.
// Integral values have no fractional part ("5"). Magnitudes below 1e-4 or
// from 1e16 upward use exponent notation ("1e-05", "1.5e+16").
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= sciLow && abs < sciHigh) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
