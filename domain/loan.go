package domain

// LoanTerms describes a loan or an investment under periodic compound interest.
// Rate is a periodic rate and must match the unit of Term.
type LoanTerms struct {
	Principal float64 `json:"principal"`
	Term      int     `json:"term"`
	Rate      float64 `json:"rate"`
	Fees      float64 `json:"fees,omitempty"`
}

// LoanInput is the request for a plain payment calculation.
type LoanInput struct {
	Principal Number `json:"principal"`
	Term      int    `json:"term"`
	Rate      Number `json:"rate"`
}

type LoanResult struct {
	Payment       float64 `json:"payment"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}
