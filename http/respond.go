package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fincalc/logging"
	"fincalc/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v into a buffer first so that a failed encoding does not
// leave a half-written 200 response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logging.Errorf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warnf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUndefinedRate),
		errors.Is(err, service.ErrInvalidPeriods),
		errors.Is(err, service.ErrTooManyPeriods),
		errors.Is(err, service.ErrOutOfRange),
		errors.Is(err, service.ErrUnknownMethod),
		errors.Is(err, service.ErrEmptyCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logging.Errorf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON validates the Content-Type and decodes the request body into v.
// It writes the error response itself and reports whether decoding worked.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logging.Debugf("Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
