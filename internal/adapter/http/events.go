package httpadapter

import (
	"fmt"
	"net/http"
)

// handleEvents streams refresh beats as server-sent events. The browser
// listens here and re-fetches the campaign listing whenever a create or
// pledge succeeds, instead of polling. The stream ends when the client
// disconnects.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := h.refresh.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	fl.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "event: refresh\ndata: {}\n\n")
			fl.Flush()
		}
	}
}
