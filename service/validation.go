package service

import (
	"fmt"

	"loan-calculator/domain"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidArgument}, args...)...)
}

func checkPrincipal(v domain.Number) error {
	if !v.Valid() {
		return invalid("principal is not a number")
	}
	if v <= 0 {
		return invalid("principal must be positive")
	}
	if v > MaxPrincipal {
		return invalid("principal exceeds the maximum of %.2f", MaxPrincipal)
	}
	return nil
}

func checkTerm(n int) error {
	if n < MinTerm {
		return invalid("term must be at least %d period", MinTerm)
	}
	if n > MaxTerm {
		return invalid("term exceeds the maximum of %d periods", MaxTerm)
	}
	return nil
}

func checkRate(v domain.Number) error {
	if !v.Valid() {
		return invalid("rate is not a number")
	}
	if v < MinRate || v > MaxRate {
		return invalid("rate must be within [%g, %g] per period", MinRate, MaxRate)
	}
	return nil
}

func checkPayment(v domain.Number) error {
	if !v.Valid() {
		return invalid("payment is not a number")
	}
	if v == 0 {
		return invalid("payment must not be zero")
	}
	return nil
}

func checkFees(v domain.Number) error {
	if !v.Valid() {
		return invalid("fees are not a number")
	}
	if v < 0 || v > MaxFees {
		return invalid("fees must be within [0, %.2f]", MaxFees)
	}
	return nil
}
