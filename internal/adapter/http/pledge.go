package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type pledgeRequest struct {
	Amount string `json:"amount"`
}

// handlePledge submits a funding transaction against the campaign named in
// the path. The body carries the human decimal amount; conversion and
// positivity checks belong to the use case. A malformed id or body results
// in HTTP 400 before anything else happens.
func (h *Handler) handlePledge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req pledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.svc.Pledge(r.Context(), id, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"pledged"}`))
}
