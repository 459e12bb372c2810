package jwtidentity_test

import (
	"context"
	"testing"
	"time"

	"resourceshare/internal/adapters/out/jwtidentity"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

const testSecret = "test-secret"

func TestResolver_Resolve_ValidToken(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	donor, err := user.NewUser(userID, "Alice", "alice@example.com", user.RoleDonor)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, userID).Return(donor, nil).Once()

	resolver := jwtidentity.NewResolver([]byte(testSecret), users)
	token, err := resolver.Issue(userID, time.Hour)
	require.NoError(t, err)

	identity, err := resolver.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, userID.IsEqual(identity.UserID))
	assert.Equal(t, user.RoleDonor, identity.Role)
	users.AssertExpectations(t)
}

func TestResolver_Resolve_MalformedToken(t *testing.T) {
	resolver := jwtidentity.NewResolver([]byte(testSecret), new(MockUserRepository))

	_, err := resolver.Resolve(t.Context(), "not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestResolver_Resolve_WrongSecret(t *testing.T) {
	userID := kernel.NewUUID()
	issuer := jwtidentity.NewResolver([]byte("other-secret"), new(MockUserRepository))
	token, err := issuer.Issue(userID, time.Hour)
	require.NoError(t, err)

	resolver := jwtidentity.NewResolver([]byte(testSecret), new(MockUserRepository))
	_, err = resolver.Resolve(t.Context(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestResolver_Resolve_ExpiredToken(t *testing.T) {
	userID := kernel.NewUUID()
	resolver := jwtidentity.NewResolver([]byte(testSecret), new(MockUserRepository))
	token, err := resolver.Issue(userID, -time.Minute)
	require.NoError(t, err)

	_, err = resolver.Resolve(t.Context(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestResolver_Resolve_UnknownUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, userID).
		Return(nil, errs.NewObjectNotFoundError("user", userID.String())).Once()

	resolver := jwtidentity.NewResolver([]byte(testSecret), users)
	token, err := resolver.Issue(userID, time.Hour)
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx, token)
	require.Error(t, err)
	// not-found is folded into not-authorized so callers cannot probe accounts
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestResolver_Resolve_InactiveUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	inactive, err := user.RestoreUser(userID, "Alice", "alice@example.com", user.RoleDonor, false)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, userID).Return(inactive, nil).Once()

	resolver := jwtidentity.NewResolver([]byte(testSecret), users)
	token, err := resolver.Issue(userID, time.Hour)
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}
