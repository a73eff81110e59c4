package finance

import "math"

// FirstPeriodPrincipal is the principal repaid by the first payment.
//
//	A1 = K0·t / ((1+t)^n − 1)
func FirstPeriodPrincipal(k0 float64, n int, t float64, dec int) float64 {
	if n == 0 {
		return k0
	}
	if t == 0 {
		return Payment(k0, n, t, dec)
	}
	return Round(k0*t/(math.Pow(1+t, float64(n))-1), dec)
}

// PeriodPrincipal is the principal repaid by payment p.
//
//	Ap = (1+t)^(p−1) · A1
func PeriodPrincipal(k0 float64, n int, t float64, p int, dec int) float64 {
	a := FirstPeriodPrincipal(k0, n, t, dec)
	if p == 1 || t == 0 {
		return Round(a, dec)
	}
	return Round(math.Pow(1+t, float64(p-1))*a, dec)
}

// ScalePrincipal moves a known principal amount a of period p1 to period p2.
func ScalePrincipal(t, a float64, p1, p2 int, dec int) float64 {
	if t == 0 {
		return a
	}
	return Round(a*math.Pow(1+t, float64(p2-p1)), dec)
}

// CumulativePrincipal sums the principal repaid from period p1 to p2 inclusive.
func CumulativePrincipal(k0 float64, n int, t float64, p1, p2 int, dec int) float64 {
	var sum float64
	for p := p1; p <= p2; p++ {
		sum += PeriodPrincipal(k0, n, t, p, NoRounding)
	}
	return Round(sum, dec)
}

// PeriodInterest is the interest part of payment p.
func PeriodInterest(k0 float64, n int, t float64, p int, dec int) float64 {
	m := Payment(k0, n, t, dec)
	return Round(m-PeriodPrincipal(k0, n, t, p, dec), dec)
}

// CumulativeInterest sums the interest paid from period p1 to p2 inclusive.
func CumulativeInterest(k0 float64, n int, t float64, p1, p2 int, dec int) float64 {
	if t == 0 {
		return 0
	}
	m := Payment(k0, n, t, dec)
	var sum float64
	for p := p1; p <= p2; p++ {
		sum += m - PeriodPrincipal(k0, n, t, p, NoRounding)
	}
	return Round(sum, dec)
}

// RemainingBalance is the balance still owed after payment p of a loan of k0.
func RemainingBalance(k0 float64, n int, t float64, p int, dec int) float64 {
	return RemainingBalanceFromPayment(Payment(k0, n, t, NoRounding), n, t, p, dec)
}

// RemainingBalanceFromPayment is the balance still owed after payment p when
// each of the n payments is m.
//
//	Kp = m·(1 − (1+t)^−(n−p)) / t
func RemainingBalanceFromPayment(m float64, n int, t float64, p int, dec int) float64 {
	if t == 0 {
		return Round(m*float64(n-p), dec)
	}
	return Round(m*(1-math.Pow(1+t, -float64(n-p)))/t, dec)
}

// RepaidPrincipal is the principal repaid once payment p has been made.
//
//	Kr = A1·((1+t)^p − 1) / t
func RepaidPrincipal(k0 float64, n int, t float64, p int, dec int) float64 {
	a := FirstPeriodPrincipal(k0, n, t, NoRounding)
	if t == 0 {
		return Round(a*float64(p), dec)
	}
	return Round(a*(math.Pow(1+t, float64(p))-1)/t, dec)
}
