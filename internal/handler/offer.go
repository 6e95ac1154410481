// internal/handler/offer.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foodyhq/backend/internal/middleware"
	"github.com/foodyhq/backend/internal/service"
)

type OfferHandler struct {
	offers *service.OfferService
}

func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

type CreateOfferResponse struct {
	BaseResponse
	ID int64 `json:"id"`
}

// CreateHandler decodes the payload as a plain key/value mapping because
// legacy clients send numeric fields as strings; the service does the
// coercion and names the offending field on failure.
func (h *OfferHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	id, err := h.offers.CreateOffer(r.Context(), user, payload)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CreateOfferResponse{
		BaseResponse: BaseResponse{Ok: true},
		ID:           id,
	})
}

func (h *OfferHandler) PublicListHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.offers.ListPublicOffers(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}
