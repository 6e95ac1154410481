package service_test

import (
	"context"
	"errors"
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

type authzFixture struct {
	users     *mocks.MockUserRepositoryIface
	locations *mocks.MockLocationRepositoryIface
	tokens    *auth.TokenManager
	svc       *service.AuthzService
}

func newAuthzFixture(t *testing.T) *authzFixture {
	ctrl := gomock.NewController(t)
	f := &authzFixture{
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		locations: mocks.NewMockLocationRepositoryIface(ctrl),
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
	}
	f.svc = service.NewAuthzService(f.users, f.locations, f.tokens)
	return f
}

func TestResolveCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("re-reads the user behind a valid token", func(t *testing.T) {
		f := newAuthzFixture(t)

		token, err := f.tokens.Issue(7)
		require.NoError(t, err)
		f.users.EXPECT().FindByID(ctx, int64(7)).Return(&model.User{ID: 7, Name: "Cafe Lavka"}, nil)

		user, err := f.svc.ResolveCurrentUser(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("missing, malformed, and orphaned tokens collapse to one verdict", func(t *testing.T) {
		f := newAuthzFixture(t)

		_, errEmpty := f.svc.ResolveCurrentUser(ctx, "")
		_, errGarbage := f.svc.ResolveCurrentUser(ctx, "not.a.token")

		orphaned, err := f.tokens.Issue(99)
		require.NoError(t, err)
		f.users.EXPECT().FindByID(ctx, int64(99)).Return(nil, domain.ErrUserNotFound)
		_, errOrphaned := f.svc.ResolveCurrentUser(ctx, orphaned)

		assert.ErrorIs(t, errEmpty, domain.ErrUnauthenticated)
		assert.ErrorIs(t, errGarbage, domain.ErrUnauthenticated)
		assert.ErrorIs(t, errOrphaned, domain.ErrUnauthenticated)
	})

	t.Run("a store outage is not an authentication verdict", func(t *testing.T) {
		f := newAuthzFixture(t)

		token, err := f.tokens.Issue(7)
		require.NoError(t, err)
		outage := errors.New("connection refused")
		f.users.EXPECT().FindByID(ctx, int64(7)).Return(nil, outage)

		_, err = f.svc.ResolveCurrentUser(ctx, token)
		assert.ErrorIs(t, err, outage)
		assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestAuthorizeLocation(t *testing.T) {
	ctx := context.Background()
	user := &model.User{ID: 7}

	t.Run("zero id defaults to the first owned location", func(t *testing.T) {
		f := newAuthzFixture(t)

		f.locations.EXPECT().
			FirstOwnedBy(ctx, int64(7)).
			Return(&model.Location{ID: 11, OrgID: 3}, nil)

		loc, err := f.svc.AuthorizeLocation(ctx, user, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(11), loc.ID)
	})

	t.Run("zero id with no locations at all", func(t *testing.T) {
		f := newAuthzFixture(t)

		f.locations.EXPECT().FirstOwnedBy(ctx, int64(7)).Return(nil, domain.ErrNoLocation)

		_, err := f.svc.AuthorizeLocation(ctx, user, 0)
		assert.ErrorIs(t, err, domain.ErrNoLocation)
	})

	t.Run("explicit id owned by the user", func(t *testing.T) {
		f := newAuthzFixture(t)

		f.locations.EXPECT().OwnedBy(ctx, int64(11), int64(7)).Return(true, nil)
		f.locations.EXPECT().FindByID(ctx, int64(11)).Return(&model.Location{ID: 11, OrgID: 3}, nil)

		loc, err := f.svc.AuthorizeLocation(ctx, user, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(11), loc.ID)
	})

	t.Run("denies another tenant's location", func(t *testing.T) {
		f := newAuthzFixture(t)

		f.locations.EXPECT().OwnedBy(ctx, int64(42), int64(7)).Return(false, nil)

		_, err := f.svc.AuthorizeLocation(ctx, user, 42)
		assert.ErrorIs(t, err, domain.ErrLocationForbidden)
	})
}
