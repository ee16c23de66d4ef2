package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListCampaigns returns the full campaign listing as one fresh
// projection. On a failed read it returns an error body and never an empty
// list, so the browser keeps whatever it already renders.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, views)
}

// handleListDonations returns the per-donor contributions of one campaign.
// A malformed id results in HTTP 400.
func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	donations, err := h.svc.ListDonations(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, donations)
}
