package finance

import "math"

// Payment returns the periodic payment repaying k0 over n periods at rate t.
//
//	m = K0·t / (1 − (1+t)^−n)
func Payment(k0 float64, n int, t float64, dec int) float64 {
	if n == 0 {
		return 0
	}
	if t == 0 {
		return Round(k0/float64(n), dec)
	}
	return Round(k0*t/(1-math.Pow(1+t, -float64(n))), dec)
}

// SavingsPayment returns the periodic deposit that accumulates to kn after
// n periods at rate t.
//
//	m = Kn·t / ((1+t)^n − 1)
func SavingsPayment(kn float64, n int, t float64, dec int) float64 {
	if t == 0 {
		return Round(kn/float64(n), dec)
	}
	return Round(kn*t/(math.Pow(1+t, float64(n))-1), dec)
}

// DeferredPayments describes a loan whose first periods only pay interest.
type DeferredPayments struct {
	// Deferred is the interest-only payment of each deferral period.
	Deferred float64
	// Regular is the payment once amortization starts.
	Regular float64
	// DeferredInterest is the interest paid over the whole deferral.
	DeferredInterest float64
}

// Deferred splits a loan of n periods, the first nDeferred of them interest
// only, into its deferral and regular payments.
func Deferred(k0 float64, n int, t float64, nDeferred int, dec int) DeferredPayments {
	d := Round(k0*t, 2)
	return DeferredPayments{
		Deferred:         d,
		Regular:          Payment(k0, n-nDeferred, t, dec),
		DeferredInterest: d * float64(nDeferred),
	}
}

// TotalInterest is the interest paid over a loan of k0 repaid by n payments of m.
func TotalInterest(k0, m float64, n int, dec int) float64 {
	if k0 == 0 || m == 0 || n == 0 {
		return 0
	}
	return Round(m*float64(n)-k0, dec)
}
