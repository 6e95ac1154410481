// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/foodyhq/backend/internal/middleware"
	"github.com/foodyhq/backend/internal/service"
)

// CookieConfig tells the handlers how to serialize the session credential.
// The token itself is the Session Manager's concern; the cookie lifecycle is
// a transport detail that lives here.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
}

type AuthHandler struct {
	identity *service.IdentityService
	cookies  CookieConfig
}

func NewAuthHandler(identity *service.IdentityService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{identity: identity, cookies: cookies}
}

type RegisterResponse struct {
	BaseResponse
	UserID     int64 `json:"user_id"`
	OrgID      int64 `json:"org_id"`
	LocationID int64 `json:"location_id"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identity.Register(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	setSessionCookie(w, h.cookies, output.Token)
	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserID:       output.User.ID,
		OrgID:        output.OrgID,
		LocationID:   output.LocationID,
	})
}

type LoginResponse struct {
	BaseResponse
	UserID int64 `json:"user_id"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identity.Login(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	setSessionCookie(w, h.cookies, output.Token)
	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		UserID:       output.User.ID,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cookies)
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := h.identity.Me(r.Context(), user)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

func setSessionCookie(w http.ResponseWriter, cfg CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
