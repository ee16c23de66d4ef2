package httpadapter

import (
	"io"
	"net/http"

	"near-crowdfund/internal/core/port"
)

// maxUploadBytes bounds the multipart form, and with it the campaign image.
const maxUploadBytes = 10 << 20

// handleCreateCampaign accepts the campaign-creation form as multipart data
// with an "image" file part plus title, description, target and deadline
// fields. Field presence is validated by the use case, not here, so an
// incomplete form gets one consistent answer no matter which field is
// missing. On success it returns HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	req := port.CreateCampaignReq{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Target:      r.FormValue("target"),
		Deadline:    r.FormValue("deadline"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		file.Close()
		if err != nil {
			http.Error(w, "unreadable image", http.StatusBadRequest)
			return
		}
		req.Image = data
		req.ImageName = header.Filename
	}

	if err := h.svc.CreateCampaign(r.Context(), req); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(`{"status":"created"}`))
}
