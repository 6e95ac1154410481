// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodyhq/backend/internal/domain"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithServiceError maps every client-facing error kind to its status
// code. Anything unrecognized is a dependency failure: it is logged with full
// detail and only a generic message crosses the boundary.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domain.ErrPhoneAlreadyExists):
		respondWithError(w, http.StatusConflict, "phone already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, domain.ErrLocationForbidden), errors.Is(err, domain.ErrNoLocation):
		respondWithError(w, http.StatusForbidden, "location not allowed")
	case errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrMerchantNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err,
			"path", r.URL.Path, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
