package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository"
	"fleetrental-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service/repository errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if errors.Is(err, service.ErrInvalid) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Error("Request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
