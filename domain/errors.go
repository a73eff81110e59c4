package domain

import "errors"

var (
	// ErrInvalidArgument reports inputs a calculation cannot be defined for,
	// such as a zero payment, a non-positive term or a non-numeric value.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoConvergence   = errors.New("rate did not converge")
	ErrNoSignChange    = errors.New("no rate in search interval")
)
