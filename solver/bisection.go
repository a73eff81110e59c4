package solver

import (
	"fmt"
	"math"

	"loan-calculator/domain"
	"loan-calculator/finance"
)

// Bisection finds the effective annual rate of a loan once fees are taken
// into account. It searches the monthly rate p for which
//
//	m·(1 − (1+p)^−n)/p − K0 + f = 0
//
// and converts it to an annual rate rounded to four places.
type Bisection struct {
	// Upper bounds the search interval.
	Upper float64
	// Tolerance is the absolute interval width at which the search stops.
	Tolerance float64
	// PaymentLower is the lower bound used by FromPayment.
	PaymentLower float64
}

func DefaultBisection() Bisection {
	return Bisection{Upper: 1, Tolerance: 1e-7, PaymentLower: 0.000001}
}

// FromRate derives the payment from the nominal monthly rate t. Without fees
// the nominal rate is already effective and is only annualized.
func (b Bisection) FromRate(principal float64, n int, t, fee float64) (domain.RateResult, error) {
	if err := checkBisection(principal, n, t, fee); err != nil {
		return domain.RateResult{}, err
	}
	payment := finance.Payment(principal, n, t, 2)
	if fee == 0 {
		return domain.RateResult{
			Rate:      finance.ConvertRate(t, finance.Monthly, finance.Annual, 4),
			Converged: true,
		}, nil
	}
	return b.search(principal, n, payment, fee, finance.Round(t, 6)), nil
}

// FromPayment uses the periodic payment m as given.
func (b Bisection) FromPayment(principal float64, n int, m, fee float64) (domain.RateResult, error) {
	if err := checkBisection(principal, n, m, fee); err != nil {
		return domain.RateResult{}, err
	}
	return b.search(principal, n, m, fee, b.PaymentLower), nil
}

func (b Bisection) search(principal float64, n int, payment, fee, lower float64) domain.RateResult {
	residual := func(p float64) float64 {
		if p == 0 {
			return payment*float64(n) - principal + fee
		}
		return payment*(1-math.Pow(1+p, -float64(n)))/p - principal + fee
	}

	lo, hi := lower, b.Upper
	fLo := residual(lo)
	if fLo*residual(hi) > 0 {
		return domain.RateResult{Reason: domain.ReasonNoSignChange}
	}

	mid := (lo + hi) / 2
	iterations := 0
	for hi-lo > b.Tolerance {
		iterations++
		fMid := residual(mid)
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
		mid = (lo + hi) / 2
	}
	return domain.RateResult{
		Rate:       finance.ConvertRate(mid, finance.Monthly, finance.Annual, 4),
		Converged:  true,
		Iterations: iterations,
	}
}

func checkBisection(principal float64, n int, x, fee float64) error {
	if n <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d", domain.ErrInvalidArgument, n)
	}
	if !finite(principal, x, fee) {
		return fmt.Errorf("%w: principal, rate or payment and fees must be numbers", domain.ErrInvalidArgument)
	}
	return nil
}
