// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	CreateWithOwner(ctx context.Context, user *model.User, org *model.Organization, loc *model.Location) error
	FindByUser(ctx context.Context, userID int64) ([]model.Organization, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates the user, its organization, the owner membership,
// and the first location in one transaction. Partial tenant creation is never
// observable: either all four rows land or none do. A duplicate phone lost to
// a concurrent registration surfaces as domain.ErrPhoneAlreadyExists.
func (r *OrganizationRepository) CreateWithOwner(ctx context.Context, user *model.User, org *model.Organization, loc *model.Location) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrPhoneAlreadyExists
			}
			return fmt.Errorf("creating user: %w", err)
		}

		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		membership := &model.OrganizationUser{
			OrgID:  org.ID,
			UserID: user.ID,
			Role:   model.RoleOwner,
		}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}

		loc.OrgID = org.ID
		if err := tx.Create(loc).Error; err != nil {
			return fmt.Errorf("creating location: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPhoneAlreadyExists) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByUser(ctx context.Context, userID int64) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Joins("JOIN organization_users ON organizations.id = organization_users.org_id").
		Where("organization_users.user_id = ?", userID).
		Order("organizations.id ASC").
		Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding user organizations: %w", err)
	}
	return orgs, nil
}
