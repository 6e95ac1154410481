// internal/service/identity.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// IdentityService owns registration, login, and profile reads. Registration
// creates the whole tenant (user, organization, owner membership, first
// location) atomically.
type IdentityService struct {
	users          repository.UserRepositoryIface
	orgs           repository.OrganizationRepositoryIface
	locations      repository.LocationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewIdentityService(
	users repository.UserRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	locations repository.LocationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *IdentityService {
	return &IdentityService{
		users:          users,
		orgs:           orgs,
		locations:      locations,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`

	// Optional first-location details.
	City      string `json:"city"`
	Address   string `json:"address"`
	CloseTime string `json:"close_time"`
	Timezone  string `json:"timezone"`
}

type RegisterOutput struct {
	User       *model.User `json:"user"`
	OrgID      int64       `json:"org_id"`
	LocationID int64       `json:"location_id"`
	Token      string      `json:"token"`
}

func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	// Optimization only: the unique index on phone is the real arbiter when
	// two registrations race.
	if _, err := s.users.FindByPhone(ctx, input.Phone); err == nil {
		return nil, domain.ErrPhoneAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Phone:        input.Phone,
		Name:         input.Name,
		PasswordHash: hashed,
	}
	org := &model.Organization{Name: input.Name}
	loc := &model.Location{
		Name:      input.Name,
		City:      strings.TrimSpace(input.City),
		Address:   strings.TrimSpace(input.Address),
		CloseTime: strings.TrimSpace(input.CloseTime),
		Timezone:  strings.TrimSpace(input.Timezone),
	}

	if err := s.orgs.CreateWithOwner(ctx, user, org, loc); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{
		User:       user,
		OrgID:      org.ID,
		LocationID: loc.ID,
		Token:      token,
	}, nil
}

type LoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *IdentityService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Phone = strings.TrimSpace(input.Phone)

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	// Unknown phone and wrong password collapse into the same outcome so
	// login failures do not leak account existence.
	user, err := s.users.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordHasher.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type Profile struct {
	User          *model.User          `json:"user"`
	Organizations []model.Organization `json:"organizations"`
	Locations     []model.Location     `json:"locations"`
}

func (s *IdentityService) Me(ctx context.Context, user *model.User) (*Profile, error) {
	orgs, err := s.orgs.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	locs, err := s.locations.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Organizations: orgs, Locations: locs}, nil
}

// validationError rewrites a validator failure into the client-facing shape,
// naming the offending field and nothing else.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			return domain.Validation(field)
		}
		return domain.Validationf(field, "failed %s constraint", fe.Tag())
	}
	return domain.ErrInvalidInput
}
