package rest

import (
	"fmt"
	"net/http"
)

// Report downloads proxy the backend's PDF endpoints and stream the blob to
// the browser as an attachment.

func (h *Handler) DownloadSeasonReport(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	data, contentType, err := h.clients.Reports.SeasonReport(r.Context(), id)
	if err != nil {
		respondBackendError(w, "Failed to fetch season report", err)
		return
	}
	writeAttachment(w, fmt.Sprintf("season-%d.pdf", id), contentType, data)
}

func (h *Handler) DownloadSerieReport(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	data, contentType, err := h.clients.Reports.SerieReport(r.Context(), id)
	if err != nil {
		respondBackendError(w, "Failed to fetch serie report", err)
		return
	}
	writeAttachment(w, fmt.Sprintf("serie-%d.pdf", id), contentType, data)
}

func (h *Handler) DownloadGameReport(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	data, contentType, err := h.clients.Reports.GameReport(r.Context(), id)
	if err != nil {
		respondBackendError(w, "Failed to fetch game report", err)
		return
	}
	writeAttachment(w, fmt.Sprintf("game-%d.pdf", id), contentType, data)
}

func (h *Handler) DownloadTeamReport(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	data, contentType, err := h.clients.Reports.TeamReport(r.Context(), id)
	if err != nil {
		respondBackendError(w, "Failed to fetch team report", err)
		return
	}
	writeAttachment(w, fmt.Sprintf("team-%d.pdf", id), contentType, data)
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
