package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"loan-calculator/domain"
	"loan-calculator/logger"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoConvergence), errors.Is(err, domain.ErrNoSignChange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a POST body into v, writing the error response itself
// when the request is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, log *logger.Logger, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugw("invalid request body", "path", r.URL.Path, "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, v any) {
	// Encode into a buffer first so a failure can still change the status.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Errorw("error encoding response", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnw("error writing response", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Errorw("calculation failed", "err", err)
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
