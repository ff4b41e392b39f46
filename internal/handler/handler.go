package handler

import (
	"context"
	"net/http"
)

// StorageStatus is the part of the repository the health check needs.
type StorageStatus interface {
	Ping(ctx context.Context) error
	Mode() string
}

type Handler struct {
	storage     StorageStatus
	frontendURL string
}

func New(storage StorageStatus, frontendURL string) *Handler {
	return &Handler{storage: storage, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
