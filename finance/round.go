// Package finance holds the closed-form time-value-of-money formulas the
// solvers and the schedule builder are built on.
//
// Every function works on float64 and never fails: a NaN argument yields a
// NaN result. A dec argument rounds the result to that many decimal places;
// a negative dec (NoRounding) returns the raw value.
package finance

import "math"

// NoRounding disables rounding when passed as a dec argument.
const NoRounding = -1

// Round rounds v to dec decimal places, ties toward positive infinity.
func Round(v float64, dec int) float64 {
	if dec < 0 {
		return v
	}
	r := math.Pow(10, float64(dec))
	return roundHalfUp(v*r) / r
}

func roundHalfUp(x float64) float64 {
	r := math.Round(x)
	if r-x == -0.5 {
		// math.Round moves negative ties away from zero.
		r++
	}
	return r
}
