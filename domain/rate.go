package domain

// FailureReason tells why a solver did not produce a rate.
type FailureReason string

const (
	ReasonNone          FailureReason = ""
	ReasonNoConvergence FailureReason = "no_convergence"
	ReasonNoSignChange  FailureReason = "no_sign_change"
)

// LegacyFailure is the value older callers expect in place of a rate when a
// solver fails.
const LegacyFailure = -1.0

// RateResult is the outcome of a rate solver. Rate is only meaningful when
// Converged is true.
type RateResult struct {
	Rate       float64       `json:"rate"`
	Converged  bool          `json:"converged"`
	Reason     FailureReason `json:"reason,omitempty"`
	Iterations int           `json:"iterations"`
}

// Legacy returns the rate, or LegacyFailure when the solver failed.
func (r RateResult) Legacy() float64 {
	if !r.Converged {
		return LegacyFailure
	}
	return r.Rate
}

// Err maps a failed result to ErrNoConvergence or ErrNoSignChange.
func (r RateResult) Err() error {
	if r.Converged {
		return nil
	}
	if r.Reason == ReasonNoSignChange {
		return ErrNoSignChange
	}
	return ErrNoConvergence
}

type RateInput struct {
	Principal Number `json:"principal"`
	Term      int    `json:"term"`
	Payment   Number `json:"payment"`
	Fees      Number `json:"fees,omitempty"`
	// ExactFees keeps fractional fees instead of dropping them.
	ExactFees bool `json:"exact_fees,omitempty"`
}

// EffectiveRateInput asks for an annual effective rate. Exactly one of Rate
// or Payment is expected; Payment wins when both are set.
type EffectiveRateInput struct {
	Principal Number  `json:"principal"`
	Term      int     `json:"term"`
	Rate      *Number `json:"rate,omitempty"`
	Payment   *Number `json:"payment,omitempty"`
	Fees      Number  `json:"fees,omitempty"`
}

type ConversionInput struct {
	Rate     Number `json:"rate"`
	From     string `json:"from"`
	To       string `json:"to"`
	Decimals *int   `json:"decimals,omitempty"`
}

type ConversionResult struct {
	Rate float64 `json:"rate"`
	From string  `json:"from"`
	To   string  `json:"to"`
}
