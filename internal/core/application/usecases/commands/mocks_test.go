package commands_test

import (
	"context"
	"testing"
	"time"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResourceRepository struct{ mock.Mock }

func (m *MockResourceRepository) Add(ctx context.Context, aggregate *resource.Resource) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockResourceRepository) Update(
	ctx context.Context, aggregate *resource.Resource, expectedStatus resource.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockResourceRepository) Get(ctx context.Context, id kernel.UUID) (*resource.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

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

type MockResourceUoW struct{ mock.Mock }

func (m *MockResourceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) ResourceRepository() ports.ResourceRepository {
	args := m.Called()
	return args.Get(0).(ports.ResourceRepository)
}

func (m *MockResourceUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockResourceUoWFactory struct{ mock.Mock }

func (m *MockResourceUoWFactory) Create() commands.ResourceUoW {
	args := m.Called()
	return args.Get(0).(commands.ResourceUoW)
}

// Test fixtures shared by the handler tests.

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(46.0569, 14.5058)
	require.NoError(t, err)
	return location
}

func testUser(t *testing.T, id kernel.UUID, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, name, name+"@example.com", role)
	require.NoError(t, err)
	return u
}

func availableResource(t *testing.T, donorID kernel.UUID) *resource.Resource {
	t.Helper()
	r, err := resource.NewResource(
		kernel.NewUUID(), donorID, "Winter coat", "Warm, size M",
		resource.CategoryClothing, testLocation(t), "Main St 5", "",
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return r
}

func claimedResource(t *testing.T, donorID kernel.UUID, receiverID kernel.UUID) *resource.Resource {
	t.Helper()
	r := availableResource(t, donorID)
	require.NoError(t, r.Claim(receiverID, time.Now().UTC()))
	require.Equal(t, resource.Claimed, r.Status())
	return r
}

func inTransitResource(t *testing.T, donorID kernel.UUID, receiverID kernel.UUID) *resource.Resource {
	t.Helper()
	r := claimedResource(t, donorID, receiverID)
	require.NoError(t, r.ConfirmPickup(donorID))
	require.Equal(t, resource.InTransit, r.Status())
	return r
}
