package finance

import "math"

// FutureValue is the value of k0 compounded over n periods at rate t.
func FutureValue(k0 float64, n int, t float64, dec int) float64 {
	if t == 0 || n == 0 {
		return k0
	}
	return Round(k0*math.Pow(1+t, float64(n)), dec)
}

// FutureValueAnnuity is the accumulated value of n deposits of m at rate t.
//
//	Kn = m·((1+t)^n − 1) / t
func FutureValueAnnuity(m float64, n int, t float64, dec int) float64 {
	if n == 0 {
		return m
	}
	if t == 0 {
		return Round(m*float64(n), dec)
	}
	return Round(m*(math.Pow(1+t, float64(n))-1)/t, dec)
}

// PresentValue discounts kn over n periods at rate t.
func PresentValue(kn float64, n int, t float64, dec int) float64 {
	if t == 0 || n == 0 {
		return kn
	}
	return Round(kn/math.Pow(1+t, float64(n)), dec)
}

// PresentValueAnnuity is the present value of n payments of m at rate t.
//
//	K0 = m·(1 − (1+t)^−n) / t
func PresentValueAnnuity(m float64, n int, t float64, dec int) float64 {
	if t == 0 {
		return Round(m*float64(n), dec)
	}
	return Round(m*(1-math.Pow(1+t, -float64(n)))/t, dec)
}

// RateFromValues is the periodic rate growing k0 into kn over n periods.
func RateFromValues(k0, kn float64, n int, dec int) float64 {
	return Round(math.Pow(kn/k0, 1/float64(n))-1, dec)
}

// TermFromValues is the number of periods needed to grow k0 into kn at rate t.
func TermFromValues(k0, kn, t float64) float64 {
	if k0 == 0 || t == 0 || k0 == kn {
		return 0
	}
	return math.Log(kn/k0) / math.Log(1+t)
}

// TermFromPayment is the number of payments of m repaying k0 at rate t.
// The result is NaN when m does not cover the first period's interest.
func TermFromPayment(k0, m, t float64) float64 {
	if t == 0 {
		return Round(k0/m, 2)
	}
	return (math.Log(m) - math.Log(m-k0*t)) / math.Log(1+t)
}
