package domain

// AmortizationRow is one period of an amortization schedule.
// ClosingBalance is OpeningBalance minus Principal; during a deferral
// period Principal is zero and the balance is carried unchanged.
type AmortizationRow struct {
	Period         int     `json:"period"`
	OpeningBalance float64 `json:"opening_balance"`
	Interest       float64 `json:"interest"`
	Principal      float64 `json:"principal"`
	ClosingBalance float64 `json:"closing_balance"`
}

// ScheduleHeader carries the terms a schedule was built from and the window
// of periods its rows cover.
type ScheduleHeader struct {
	Principal       float64 `json:"principal"`
	Term            int     `json:"term"`
	Rate            float64 `json:"rate"`
	Payment         float64 `json:"payment"`
	Deferred        int     `json:"deferred,omitempty"`
	DeferredPayment float64 `json:"deferred_payment,omitempty"`
	From            int     `json:"from"`
	To              int     `json:"to"`
}

type Schedule struct {
	Header ScheduleHeader    `json:"header"`
	Rows   []AmortizationRow `json:"rows"`
}

type ScheduleInput struct {
	Principal Number `json:"principal"`
	Term      int    `json:"term"`
	Rate      Number `json:"rate"`
	Deferred  int    `json:"deferred,omitempty"`
	From      int    `json:"from,omitempty"`
	To        int    `json:"to,omitempty"`
}
