package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
)

// statusFor maps the failure taxonomy onto HTTP status codes. Validation
// failures are the caller's fault; collaborator failures surface as bad
// gateway so the browser can tell them apart from its own mistakes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrIncompleteForm),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrPastDeadline):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrPinningFailed),
		errors.Is(err, port.ErrTransactionFailed),
		errors.Is(err, port.ErrQueryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= 500 {
		h.logger.Error("request failed", slog.Any("error", err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on the response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
