package service

import (
	"context"
	"fmt"

	"loan-calculator/domain"
	"loan-calculator/finance"
	"loan-calculator/solver"
)

// SolveRate recovers the periodic rate of a loan from its payment.
// A solver failure is returned together with the failed result.
func (s *LoanService) SolveRate(
	ctx context.Context,
	input domain.RateInput,
) (domain.RateResult, error) {
	if err := checkPrincipal(input.Principal); err != nil {
		return domain.RateResult{}, err
	}
	if err := checkTerm(input.Term); err != nil {
		return domain.RateResult{}, err
	}
	if err := checkPayment(input.Payment); err != nil {
		return domain.RateResult{}, err
	}
	if err := checkFees(input.Fees); err != nil {
		return domain.RateResult{}, err
	}

	newton := s.newton
	if input.ExactFees {
		newton.Fees = solver.FeesExact
	}
	res, err := newton.Solve(input.Principal.Float64(), input.Term, input.Payment.Float64(), input.Fees.Float64())
	if err != nil {
		return domain.RateResult{}, err
	}
	if !res.Converged {
		s.log.Infow("rate solver failed",
			"reason", res.Reason,
			"iterations", res.Iterations,
			"fee_policy", newton.Fees.String(),
		)
		return res, fmt.Errorf("periodic rate: %w", res.Err())
	}

	s.record(ctx, KindRate, input, res)
	return res, nil
}

// EffectiveRate returns the annual effective rate of a loan with fees,
// starting from its monthly rate or from its monthly payment.
func (s *LoanService) EffectiveRate(
	ctx context.Context,
	input domain.EffectiveRateInput,
) (domain.RateResult, error) {
	if err := checkPrincipal(input.Principal); err != nil {
		return domain.RateResult{}, err
	}
	if err := checkTerm(input.Term); err != nil {
		return domain.RateResult{}, err
	}
	if err := checkFees(input.Fees); err != nil {
		return domain.RateResult{}, err
	}

	var (
		res domain.RateResult
		err error
	)
	switch {
	case input.Payment != nil:
		if err := checkPayment(*input.Payment); err != nil {
			return domain.RateResult{}, err
		}
		res, err = s.bisection.FromPayment(input.Principal.Float64(), input.Term, input.Payment.Float64(), input.Fees.Float64())
	case input.Rate != nil:
		if err := checkRate(*input.Rate); err != nil {
			return domain.RateResult{}, err
		}
		res, err = s.bisection.FromRate(input.Principal.Float64(), input.Term, input.Rate.Float64(), input.Fees.Float64())
	default:
		return domain.RateResult{}, invalid("either rate or payment is required")
	}
	if err != nil {
		return domain.RateResult{}, err
	}
	if !res.Converged {
		s.log.Infow("effective rate solver failed", "reason", res.Reason)
		return res, fmt.Errorf("effective rate: %w", res.Err())
	}

	s.record(ctx, KindEffectiveRate, input, res)
	return res, nil
}

// ConvertRate converts a rate between compounding periods.
func (s *LoanService) ConvertRate(
	ctx context.Context,
	input domain.ConversionInput,
) (domain.ConversionResult, error) {
	if !input.Rate.Valid() {
		return domain.ConversionResult{}, invalid("rate is not a number")
	}
	from, err := finance.ParsePeriod(input.From)
	if err != nil {
		return domain.ConversionResult{}, invalid("from: %v", err)
	}
	to, err := finance.ParsePeriod(input.To)
	if err != nil {
		return domain.ConversionResult{}, invalid("to: %v", err)
	}
	dec := finance.NoRounding
	if input.Decimals != nil {
		dec = *input.Decimals
		if dec < 0 || dec > MaxDecimals {
			return domain.ConversionResult{}, invalid("decimals must be within [0, %d]", MaxDecimals)
		}
	}

	rate := input.Rate.Float64()
	if c, ok := finance.LookupConversion(from, to); ok {
		rate = c.Apply(rate, dec)
	}
	result := domain.ConversionResult{Rate: rate, From: from.String(), To: to.String()}

	s.record(ctx, KindConversion, input, result)
	return result, nil
}
