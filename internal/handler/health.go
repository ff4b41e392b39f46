package handler

import (
	"log/slog"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Storage string `json:"storage"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	mode := h.storage.Mode()
	if err := h.storage.Ping(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "health check failed", "storage", mode, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: "storage unavailable",
			Storage: mode,
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Heaven of Munroe API",
		Storage: mode,
	})
}
