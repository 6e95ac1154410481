package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/foodyhq/backend/internal/auth"
	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/mocks"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type identityFixture struct {
	users     *mocks.MockUserRepositoryIface
	orgs      *mocks.MockOrganizationRepositoryIface
	locations *mocks.MockLocationRepositoryIface
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenManager
	svc       *service.IdentityService
}

func newIdentityFixture(t *testing.T) *identityFixture {
	ctrl := gomock.NewController(t)
	f := &identityFixture{
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		orgs:      mocks.NewMockOrganizationRepositoryIface(ctrl),
		locations: mocks.NewMockLocationRepositoryIface(ctrl),
		hasher:    auth.NewPasswordHasher(),
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
	}
	f.svc = service.NewIdentityService(f.users, f.orgs, f.locations, f.hasher, f.tokens)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the whole tenant and returns a usable token", func(t *testing.T) {
		f := newIdentityFixture(t)

		f.users.EXPECT().FindByPhone(ctx, "+79990001122").Return(nil, domain.ErrUserNotFound)
		f.orgs.EXPECT().
			CreateWithOwner(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User, org *model.Organization, loc *model.Location) error {
				assert.Equal(t, "+79990001122", user.Phone)
				assert.Equal(t, "Cafe Lavka", user.Name)
				assert.NotEqual(t, "s3cret!", user.PasswordHash, "password must be stored hashed")
				assert.Equal(t, "Cafe Lavka", org.Name)
				assert.Equal(t, "Moscow", loc.City)
				user.ID = 7
				org.ID = 3
				loc.ID = 11
				return nil
			})

		out, err := f.svc.Register(ctx, service.RegisterInput{
			Name:     "  Cafe Lavka ",
			Phone:    " +79990001122 ",
			Password: "s3cret!",
			City:     "Moscow",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), out.User.ID)
		assert.Equal(t, int64(3), out.OrgID)
		assert.Equal(t, int64(11), out.LocationID)

		userID, err := f.tokens.Verify(out.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("rejects an already registered phone", func(t *testing.T) {
		f := newIdentityFixture(t)

		f.users.EXPECT().
			FindByPhone(ctx, "+79990001122").
			Return(&model.User{ID: 7, Phone: "+79990001122"}, nil)

		_, err := f.svc.Register(ctx, service.RegisterInput{
			Name:     "Cafe Lavka",
			Phone:    "+79990001122",
			Password: "s3cret!",
		})
		assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	})

	t.Run("surfaces a lost insert race as the same conflict", func(t *testing.T) {
		f := newIdentityFixture(t)

		f.users.EXPECT().FindByPhone(ctx, "+79990001122").Return(nil, domain.ErrUserNotFound)
		f.orgs.EXPECT().
			CreateWithOwner(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrPhoneAlreadyExists)

		_, err := f.svc.Register(ctx, service.RegisterInput{
			Name:     "Cafe Lavka",
			Phone:    "+79990001122",
			Password: "s3cret!",
		})
		assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	})

	t.Run("names the missing field", func(t *testing.T) {
		f := newIdentityFixture(t)

		_, err := f.svc.Register(ctx, service.RegisterInput{
			Name:     "Cafe Lavka",
			Password: "s3cret!",
		})
		require.True(t, domain.IsValidation(err))
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "phone", verr.Field)
	})

	t.Run("rejects a too-short password", func(t *testing.T) {
		f := newIdentityFixture(t)

		_, err := f.svc.Register(ctx, service.RegisterInput{
			Name:     "Cafe Lavka",
			Phone:    "+79990001122",
			Password: "short",
		})
		require.True(t, domain.IsValidation(err))
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		f := newIdentityFixture(t)

		hash, err := f.hasher.Hash("s3cret!")
		require.NoError(t, err)
		f.users.EXPECT().
			FindByPhone(ctx, "+79990001122").
			Return(&model.User{ID: 7, Phone: "+79990001122", PasswordHash: hash}, nil)

		out, err := f.svc.Login(ctx, service.LoginInput{Phone: "+79990001122", Password: "s3cret!"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), out.User.ID)

		userID, err := f.tokens.Verify(out.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("wrong password and unknown phone are indistinguishable", func(t *testing.T) {
		f := newIdentityFixture(t)

		hash, err := f.hasher.Hash("s3cret!")
		require.NoError(t, err)
		f.users.EXPECT().
			FindByPhone(ctx, "+79990001122").
			Return(&model.User{ID: 7, PasswordHash: hash}, nil)
		f.users.EXPECT().
			FindByPhone(ctx, "+70000000000").
			Return(nil, domain.ErrUserNotFound)

		_, errWrongPass := f.svc.Login(ctx, service.LoginInput{Phone: "+79990001122", Password: "nope"})
		_, errUnknown := f.svc.Login(ctx, service.LoginInput{Phone: "+70000000000", Password: "s3cret!"})

		assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	f := newIdentityFixture(t)

	user := &model.User{ID: 7, Phone: "+79990001122", Name: "Cafe Lavka"}
	f.orgs.EXPECT().FindByUser(ctx, int64(7)).Return([]model.Organization{{ID: 3, Name: "Cafe Lavka"}}, nil)
	f.locations.EXPECT().FindByUser(ctx, int64(7)).Return([]model.Location{{ID: 11, OrgID: 3}}, nil)

	profile, err := f.svc.Me(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, profile.User)
	require.Len(t, profile.Organizations, 1)
	require.Len(t, profile.Locations, 1)
	assert.Equal(t, int64(11), profile.Locations[0].ID)
}
