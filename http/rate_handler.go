package http

import (
	"net/http"

	"loan-calculator/domain"
)

// rateResponse adds the legacy failure value to a solver result.
type rateResponse struct {
	domain.RateResult
	LegacyRate float64 `json:"legacy"`
	Error  string  `json:"error,omitempty"`
}

func (h *LoanHandler) SolveRate(w http.ResponseWriter, r *http.Request) {
	var input domain.RateInput
	if !decodeJSON(w, r, h.log, &input) {
		return
	}

	res, err := h.service.SolveRate(r.Context(), input)
	h.writeRate(w, res, err)
}

func (h *LoanHandler) EffectiveRate(w http.ResponseWriter, r *http.Request) {
	var input domain.EffectiveRateInput
	if !decodeJSON(w, r, h.log, &input) {
		return
	}

	res, err := h.service.EffectiveRate(r.Context(), input)
	h.writeRate(w, res, err)
}

func (h *LoanHandler) writeRate(w http.ResponseWriter, res domain.RateResult, err error) {
	status := http.StatusOK
	resp := rateResponse{RateResult: res, LegacyRate: res.Legacy()}
	if err != nil {
		status = statusFor(err)
		if status != http.StatusUnprocessableEntity {
			writeError(w, h.log, err)
			return
		}
		resp.Error = err.Error()
	}
	writeJSON(w, h.log, status, resp)
}

func (h *LoanHandler) ConvertRate(w http.ResponseWriter, r *http.Request) {
	var input domain.ConversionInput
	if !decodeJSON(w, r, h.log, &input) {
		return
	}

	res, err := h.service.ConvertRate(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, res)
}
