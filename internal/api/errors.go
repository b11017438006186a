// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AhmedFarag1/go-clean-code/internal/storage"
	"github.com/AhmedFarag1/go-clean-code/internal/validation"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeBadRequest writes a 400 response with a client-facing message.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// writeNotFound writes a 404 Not Found response.
func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

// writeInternal writes a 500 with an opaque message. The underlying error is
// logged by the caller, never leaked to the client.
func writeInternal(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// writeValidationError writes a 400 carrying the per-field violation details.
func writeValidationError(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "validation failed",
		"details": errs,
	})
}

// writeDomainError maps service-layer failures onto HTTP status codes.
// Unknown errors become an opaque 500; the caller logs them.
func writeDomainError(w http.ResponseWriter, err error) bool {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeValidationError(w, verrs)
		return true
	case errors.Is(err, storage.ErrNotFound):
		writeNotFound(w)
		return true
	}
	return false
}
