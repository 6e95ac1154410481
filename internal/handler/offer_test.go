package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/foodyhq/backend/internal/handler"
	"github.com/foodyhq/backend/internal/middleware"
	"github.com/foodyhq/backend/internal/mocks"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerAPIFixture struct {
	users     *mocks.MockUserRepositoryIface
	locations *mocks.MockLocationRepositoryIface
	offers    *mocks.MockOfferRepositoryIface
	tokens    *auth.TokenManager
	router    chi.Router
}

func newOfferAPIFixture(t *testing.T) *offerAPIFixture {
	ctrl := gomock.NewController(t)
	f := &offerAPIFixture{
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		locations: mocks.NewMockLocationRepositoryIface(ctrl),
		offers:    mocks.NewMockOfferRepositoryIface(ctrl),
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
	}

	authz := service.NewAuthzService(f.users, f.locations, f.tokens)
	offerService := service.NewOfferService(f.offers, authz, nil, "https://cdn.example.com/no_photo.jpg")
	offerHandler := handler.NewOfferHandler(offerService)

	r := chi.NewRouter()
	r.Get("/api/v1/public/offers", offerHandler.PublicListHandler)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authz, testCookieName))
		r.Post("/api/v1/merchant/offers", offerHandler.CreateHandler)
	})
	f.router = r
	return f
}

func (f *offerAPIFixture) authedPost(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := f.tokens.Issue(7)
	require.NoError(t, err)
	f.users.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&model.User{ID: 7}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant/offers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOfferEndpoint(t *testing.T) {
	t.Run("201 with the new offer id", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		f.locations.EXPECT().
			FirstOwnedBy(gomock.Any(), int64(7)).
			Return(&model.Location{ID: 11}, nil)
		f.offers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, offer *model.Offer) error {
				offer.ID = 55
				return nil
			})

		rec := f.authedPost(t,
			`{"title":"Surplus pastry box","price":"199.5","stock":"3","expires_at":"2026-09-01 21:30"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.CreateOfferResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(55), resp.ID)
	})

	t.Run("400 names the offending field", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		rec := f.authedPost(t, `{"title":"Surplus pastry box","stock":"3"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "price", resp.Field)
	})

	t.Run("403 for a location outside the tenant", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		f.locations.EXPECT().OwnedBy(gomock.Any(), int64(42), int64(7)).Return(false, nil)

		rec := f.authedPost(t,
			`{"title":"Surplus pastry box","price":100,"stock":1,"expires_at":"2026-09-01 21:30","location_id":42}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("401 without a credential", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant/offers", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPublicOffersEndpoint(t *testing.T) {
	t.Run("serves the listing without authentication", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		f.offers.EXPECT().ListPublic(gomock.Any(), 200).Return([]model.PublicOffer{
			{ID: 55, Title: "Surplus pastry box", SellerName: "Cafe Lavka"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/public/offers", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []model.PublicOffer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Cafe Lavka", rows[0].SellerName)
	})

	t.Run("a store failure crosses the boundary as a generic 500", func(t *testing.T) {
		f := newOfferAPIFixture(t)

		f.offers.EXPECT().ListPublic(gomock.Any(), 200).Return(nil, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/public/offers", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
