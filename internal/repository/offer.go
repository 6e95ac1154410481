// internal/repository/offer.go
package repository

import (
	"context"
	"fmt"

	"github.com/foodyhq/backend/internal/model"
	"gorm.io/gorm"
)

type OfferRepositoryIface interface {
	Create(ctx context.Context, offer *model.Offer) error
	ListPublic(ctx context.Context, limit int) ([]model.PublicOffer, error)
}

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return fmt.Errorf("creating offer: %w", err)
	}
	return nil
}

// ListPublic returns publicly visible offers, soonest-expiring first. The
// seller is resolved through two parallel read paths over the shared store:
// the location's organization for new rows, the legacy merchant for rows that
// predate locations.
func (r *OfferRepository) ListPublic(ctx context.Context, limit int) ([]model.PublicOffer, error) {
	var rows []model.PublicOffer
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id,
		       o.title,
		       COALESCE(o.description, '')   AS description,
		       COALESCE(o.category, 'other') AS category,
		       o.price,
		       o.stock,
		       o.image_url,
		       o.expires_at,
		       o.status,
		       COALESCE(org.name, m.name, '')      AS seller_name,
		       COALESCE(l.address, m.address, '')  AS seller_address
		FROM offers o
		LEFT JOIN locations l       ON l.id = o.location_id
		LEFT JOIN organizations org ON org.id = l.org_id
		LEFT JOIN merchants m       ON m.id = o.merchant_id
		WHERE o.status = 'active'
		  AND o.expires_at > NOW()
		  AND o.stock > 0
		ORDER BY o.expires_at ASC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing public offers: %w", err)
	}
	return rows, nil
}
