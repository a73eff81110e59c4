// Package solver recovers implicit interest rates from loan terms.
package solver

import (
	"fmt"
	"math"

	"loan-calculator/domain"
	"loan-calculator/finance"
)

// FeePolicy decides how Newton treats the fee amount.
type FeePolicy int

const (
	// FeesWholeOnly ignores any fee that is not a whole amount.
	FeesWholeOnly FeePolicy = iota
	// FeesExact uses the fee as given.
	FeesExact
)

func (p FeePolicy) String() string {
	if p == FeesExact {
		return "exact"
	}
	return "whole_only"
}

// Newton finds the periodic rate t of a loan of principal K0 repaid by n
// payments of m, net of fees f, as the root of
//
//	P(t) = M·t·(1+t)^n − (1+t)^n + 1,  M = (K0 − f)/m
//
// Each update is rounded to Decimals places and the iteration stops when an
// update no longer changes the rounded value.
type Newton struct {
	Seed          float64
	MaxIterations int
	Decimals      int
	Fees          FeePolicy
}

func DefaultNewton() Newton {
	return Newton{
		Seed:          0.01,
		MaxIterations: 20,
		Decimals:      9,
		Fees:          FeesWholeOnly,
	}
}

// Solve returns the periodic rate, or a result with Converged false when
// the iteration cap is reached first. A zero payment, a non-positive term
// or a non-finite argument is reported as domain.ErrInvalidArgument.
func (s Newton) Solve(principal float64, n int, payment, fee float64) (domain.RateResult, error) {
	if n <= 0 {
		return domain.RateResult{}, fmt.Errorf("%w: term must be positive, got %d", domain.ErrInvalidArgument, n)
	}
	if payment == 0 {
		return domain.RateResult{}, fmt.Errorf("%w: payment must not be zero", domain.ErrInvalidArgument)
	}
	if !finite(principal, payment, fee) {
		return domain.RateResult{}, fmt.Errorf("%w: principal, payment and fees must be numbers", domain.ErrInvalidArgument)
	}
	if s.Fees == FeesWholeOnly && fee != math.Trunc(fee) {
		fee = 0
	}

	if zeroInterest(principal-fee, payment, n) {
		// t = 0 is then a double root, too flat for the rounding test.
		return domain.RateResult{Converged: true}, nil
	}

	m := (principal - fee) / payment
	res := s.iterate(m, n, s.Seed)
	if res.Converged && res.Rate == 0 {
		// P(t) always vanishes at t = 0. Retry from the right of the
		// positive root, where P(1/M) = 1.
		retry := s.iterate(m, n, 1/m)
		retry.Iterations += res.Iterations
		if retry.Converged && retry.Rate == 0 {
			retry = domain.RateResult{Reason: domain.ReasonNoConvergence, Iterations: retry.Iterations}
		}
		return retry, nil
	}
	return res, nil
}

func (s Newton) iterate(m float64, n int, seed float64) domain.RateResult {
	var (
		nf = float64(n)
		r0 float64
		r1 = seed
	)
	for i := 1; i <= s.MaxIterations; i++ {
		r0 = r1
		g := math.Pow(1+r0, nf)
		g1 := math.Pow(1+r0, nf-1)
		p := m*r0*g - g + 1
		dp := m*g + m*nf*r0*g1 - nf*g1
		r1 = finance.Round(r0-p/dp, s.Decimals)
		if r1 == r0 {
			return domain.RateResult{Rate: r1, Converged: true, Iterations: i}
		}
	}
	return domain.RateResult{Reason: domain.ReasonNoConvergence, Iterations: s.MaxIterations}
}

// zeroInterest reports whether n payments of m repay exactly the net principal.
func zeroInterest(net, m float64, n int) bool {
	return math.Abs(m*float64(n)-net) <= 1e-9*math.Max(1, math.Abs(net))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
