// internal/repository/location.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"gorm.io/gorm"
)

type LocationRepositoryIface interface {
	FindByID(ctx context.Context, id int64) (*model.Location, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Location, error)
	FirstOwnedBy(ctx context.Context, userID int64) (*model.Location, error)
	OwnedBy(ctx context.Context, locationID, userID int64) (bool, error)
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	var loc model.Location
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("finding location: %w", err)
	}
	return &loc, nil
}

func (r *LocationRepository) FindByUser(ctx context.Context, userID int64) ([]model.Location, error) {
	var locs []model.Location
	if err := r.db.WithContext(ctx).
		Joins("JOIN organization_users ON organization_users.org_id = locations.org_id").
		Where("organization_users.user_id = ?", userID).
		Order("locations.id ASC").
		Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("finding user locations: %w", err)
	}
	return locs, nil
}

// FirstOwnedBy returns the user's oldest location by ascending id. This is
// the fallback for single-location tenants that omit an explicit location_id.
func (r *LocationRepository) FirstOwnedBy(ctx context.Context, userID int64) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Joins("JOIN organization_users ON organization_users.org_id = locations.org_id").
		Where("organization_users.user_id = ?", userID).
		Order("locations.id ASC").
		First(&loc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoLocation
		}
		return nil, fmt.Errorf("finding first location: %w", err)
	}
	return &loc, nil
}

// OwnedBy reports whether the location's owning organization has a membership
// row for the user.
func (r *LocationRepository) OwnedBy(ctx context.Context, locationID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Joins("JOIN organization_users ON organization_users.org_id = locations.org_id").
		Where("locations.id = ? AND organization_users.user_id = ?", locationID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking location ownership: %w", err)
	}
	return count > 0, nil
}
