// internal/service/offer.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/repository"
)

const (
	publicOffersCacheKey = "public_offers"
	publicOffersLimit    = 200
)

// OfferService creates offers scoped to a location and serves the public
// listing. Inputs arrive as already-parsed key/value payloads because legacy
// clients send numbers as strings.
type OfferService struct {
	offers         repository.OfferRepositoryIface
	authz          *AuthzService
	cache          *CacheService
	placeholderURL string
}

func NewOfferService(
	offers repository.OfferRepositoryIface,
	authz *AuthzService,
	cacheService *CacheService,
	placeholderURL string,
) *OfferService {
	return &OfferService{
		offers:         offers,
		authz:          authz,
		cache:          cacheService,
		placeholderURL: placeholderURL,
	}
}

// CreateOffer validates the payload, resolves the target location through the
// authorization guard, and inserts the offer. The offer always starts active.
func (s *OfferService) CreateOffer(ctx context.Context, user *model.User, payload map[string]any) (int64, error) {
	for _, field := range []string{"title", "price", "stock", "expires_at"} {
		if strings.TrimSpace(stringField(payload, field)) == "" {
			return 0, domain.Validation(field)
		}
	}

	price, err := numberField(payload, "price")
	if err != nil {
		return 0, err
	}
	stockF, err := numberField(payload, "stock")
	if err != nil {
		return 0, err
	}
	stock := int(stockF)

	expiresAt, err := ParseExpiresAt(stringField(payload, "expires_at"))
	if err != nil {
		return 0, err
	}

	locationID, err := optionalIDField(payload, "location_id")
	if err != nil {
		return 0, err
	}

	loc, err := s.authz.AuthorizeLocation(ctx, user, locationID)
	if err != nil {
		return 0, err
	}

	imageURL := strings.TrimSpace(stringField(payload, "image_url"))
	if imageURL == "" {
		imageURL = s.placeholderURL
	}
	category := strings.TrimSpace(stringField(payload, "category"))
	if category == "" {
		category = "other"
	}

	offer := &model.Offer{
		LocationID:  &loc.ID,
		Title:       strings.TrimSpace(stringField(payload, "title")),
		Description: strings.TrimSpace(stringField(payload, "description")),
		Category:    category,
		Price:       price,
		Stock:       stock,
		ImageURL:    imageURL,
		ExpiresAt:   expiresAt,
		Status:      model.OfferActive,
	}

	if err := s.offers.Create(ctx, offer); err != nil {
		return 0, err
	}

	if s.cache != nil {
		s.cache.Delete(ctx, publicOffersCacheKey)
	}

	return offer.ID, nil
}

// ListPublicOffers returns every offer that is active, in stock, and not yet
// expired, soonest-expiring first, capped at 200 rows. The result is briefly
// cached; the bot front end polls this read.
func (s *OfferService) ListPublicOffers(ctx context.Context) ([]model.PublicOffer, error) {
	if s.cache == nil {
		return s.offers.ListPublic(ctx, publicOffersLimit)
	}

	var rows []model.PublicOffer
	err := s.cache.GetOrSet(ctx, publicOffersCacheKey, &rows, func() (interface{}, error) {
		return s.offers.ListPublic(ctx, publicOffersLimit)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ParseExpiresAt accepts the picker's local "date space time" form (already
// UTC wall clock) and falls back to ISO-8601 with or without an offset;
// naive timestamps are assumed UTC.
func ParseExpiresAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, domain.Validation("expires_at")
	}

	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04Z07:00", value); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, domain.Validationf("expires_at", "unrecognized timestamp %q", value)
}

func stringField(payload map[string]any, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func numberField(payload map[string]any, key string) (float64, error) {
	raw := strings.TrimSpace(stringField(payload, key))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.Validationf(key, "must be a number")
	}
	return f, nil
}

func optionalIDField(payload map[string]any, key string) (int64, error) {
	raw := strings.TrimSpace(stringField(payload, key))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, domain.Validationf(key, "must be a numeric id")
	}
	return int64(f), nil
}
