// internal/repository/merchant.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"gorm.io/gorm"
)

type MerchantRepositoryIface interface {
	FindByBusinessKey(ctx context.Context, restaurantID string) (*model.Merchant, error)
}

type MerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// FindByBusinessKey resolves a legacy merchant by its textual business key.
// Historical rows may carry either representation, so an all-digits key that
// misses on restaurant_id is retried against the numeric surrogate id.
func (r *MerchantRepository) FindByBusinessKey(ctx context.Context, restaurantID string) (*model.Merchant, error) {
	var m model.Merchant
	err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("finding merchant: %w", err)
	}

	if allDigits.MatchString(restaurantID) {
		err = r.db.WithContext(ctx).Where("id = ?", restaurantID).First(&m).Error
		if err == nil {
			return &m, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("finding merchant by id: %w", err)
		}
	}

	return nil, domain.ErrMerchantNotFound
}
