package http

import (
	"net/http"

	"loan-calculator/domain"
	"loan-calculator/logger"
	"loan-calculator/service"
)

type LoanHandler struct {
	service *service.LoanService
	log     *logger.Logger
}

func NewLoanHandler(service *service.LoanService, log *logger.Logger) *LoanHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &LoanHandler{service: service, log: log}
}

// Routes registers every loan endpoint on mux behind the rate limiter.
func (h *LoanHandler) Routes(mux *http.ServeMux, limiter *RateLimiter) {
	routes := map[string]http.HandlerFunc{
		"/loan/calculate":      h.CalculateLoan,
		"/loan/rate":           h.SolveRate,
		"/loan/effective-rate": h.EffectiveRate,
		"/loan/schedule":       h.BuildSchedule,
		"/rate/convert":        h.ConvertRate,
	}
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, h.log, &input) {
		return
	}

	result, err := h.service.CalculateLoan(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

func (h *LoanHandler) BuildSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.ScheduleInput
	if !decodeJSON(w, r, h.log, &input) {
		return
	}

	schedule, err := h.service.BuildSchedule(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, schedule)
}
