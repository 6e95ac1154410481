// internal/handler/legacy.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foodyhq/backend/internal/middleware"
	"github.com/foodyhq/backend/internal/service"
)

// LegacyHandler serves the old merchant client. Payloads stay key/value maps
// end to end; the shim decides which aliases mean what.
type LegacyHandler struct {
	legacy  *service.LegacyService
	cookies CookieConfig
}

func NewLegacyHandler(legacy *service.LegacyService, cookies CookieConfig) *LegacyHandler {
	return &LegacyHandler{legacy: legacy, cookies: cookies}
}

func (h *LegacyHandler) RegisterPublicHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, token, err := h.legacy.Register(r.Context(), payload)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	setSessionCookie(w, h.cookies, token)
	respondWithJSON(w, http.StatusCreated, output)
}

func (h *LegacyHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	creds, token, err := h.legacy.Login(r.Context(), payload)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	setSessionCookie(w, h.cookies, token)
	respondWithJSON(w, http.StatusOK, creds)
}

func (h *LegacyHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := h.legacy.Me(r.Context(), user)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// ProfileHandler reads a legacy merchant row by business key; old deployments
// keep resolving regardless of whether the key is the original text form or
// the numeric surrogate rendered as text.
func (h *LegacyHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	merchant, err := h.legacy.MerchantProfile(r.Context(), r.URL.Query().Get("restaurant_id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, merchant)
}
