package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heavenofmunroe/backend/internal/repository"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, message string, errs map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message, Errors: errs})
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields, trailing data and bodies over maxBodyBytes are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body must not exceed %d bytes", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// bind decodes and validates the request body into dst. On failure it writes
// a 400 response and returns false.
func bind(w http.ResponseWriter, r *http.Request, dst any, invalidMessage string) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeValidationError(w, invalidMessage, map[string]string{"body": err.Error()})
		return false
	}
	if errs := validateStruct(dst); errs != nil {
		writeValidationError(w, invalidMessage, errs)
		return false
	}
	return true
}

const serverErrorMessage = "Server error. Please try again later."

// writeServiceError maps a service failure onto a status code. The detail is
// logged under op; the client only sees an opaque message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
		return
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, "A record with this key already exists")
		return
	}
	slog.ErrorContext(r.Context(), "request failed", "op", op, "method", r.Method, "path", r.URL.Path, "error", err)
	if errors.Is(err, repository.ErrStorageUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, serverErrorMessage)
}
