// internal/service/authz.go
package service

import (
	"context"
	"errors"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/repository"
)

// AuthzService resolves the acting user from a credential and answers
// location-ownership questions for everything downstream.
type AuthzService struct {
	users        repository.UserRepositoryIface
	locations    repository.LocationRepositoryIface
	tokenManager *auth.TokenManager
}

func NewAuthzService(
	users repository.UserRepositoryIface,
	locations repository.LocationRepositoryIface,
	tokenManager *auth.TokenManager,
) *AuthzService {
	return &AuthzService{
		users:        users,
		locations:    locations,
		tokenManager: tokenManager,
	}
}

// ResolveCurrentUser verifies the credential and re-reads the user row.
// A missing credential, a bad signature, and a token for a user that no
// longer exists all collapse into ErrUnauthenticated, so callers cannot
// distinguish them and probe for account existence. Store failures stay
// distinct: an outage is not an authentication verdict.
func (s *AuthzService) ResolveCurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	userID, err := s.tokenManager.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// AuthorizeLocation grants access iff the location's owning organization has
// a membership row for the user. A zero locationID falls back to the user's
// first location by ascending id, the deliberate default for single-location
// tenants.
func (s *AuthzService) AuthorizeLocation(ctx context.Context, user *model.User, locationID int64) (*model.Location, error) {
	if locationID == 0 {
		return s.locations.FirstOwnedBy(ctx, user.ID)
	}

	owned, err := s.locations.OwnedBy(ctx, locationID, user.ID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrLocationForbidden
	}

	return s.locations.FindByID(ctx, locationID)
}
