package commands_test

import (
	"testing"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimResourceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: receiverID, Role: user.RoleReceiver}
	aggregate := availableResource(t, donorID)
	donor := testUser(t, donorID, "Alice", user.RoleDonor)
	receiver := testUser(t, receiverID, "Bob", user.RoleReceiver)

	cmd, err := commands.NewClaimResourceCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	resourceRepo := new(MockResourceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockResourceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		resourceRepo.On("Update", mock.Anything, aggregate, resource.Available).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, donorID).Return(donor, nil).Once(),
		userRepo.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimResourceCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, resource.Claimed, result.Status)
	require.NotNil(t, result.ReceiverID)
	assert.True(t, receiverID.IsEqual(*result.ReceiverID))
	assert.Equal(t, "Bob", result.ReceiverName)
	assert.NotNil(t, result.ClaimedAt)
	resourceRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimResourceCommandHandler_Handle_AutoConfirmSkipsPickup(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: receiverID, Role: user.RoleReceiver}
	aggregate := availableResource(t, donorID)
	require.NoError(t, aggregate.ToggleAutoConfirm(donorID))
	donor := testUser(t, donorID, "Alice", user.RoleDonor)
	receiver := testUser(t, receiverID, "Bob", user.RoleReceiver)

	cmd, err := commands.NewClaimResourceCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	resourceRepo := new(MockResourceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockResourceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		resourceRepo.On("Update", mock.Anything, aggregate, resource.Available).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, donorID).Return(donor, nil).Once(),
		userRepo.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimResourceCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, resource.InTransit, result.Status)
	resourceRepo.AssertExpectations(t)
}

func TestClaimResourceCommandHandler_Handle_DonorRoleRejected(t *testing.T) {
	ctx := t.Context()
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	cmd, err := commands.NewClaimResourceCommand(kernel.NewUUID(), caller)
	require.NoError(t, err)

	factory := new(MockResourceUoWFactory)
	h := commands.NewClaimResourceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimResourceCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	firstReceiverID := kernel.NewUUID()
	secondReceiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: secondReceiverID, Role: user.RoleReceiver}
	aggregate := claimedResource(t, donorID, firstReceiverID)

	cmd, err := commands.NewClaimResourceCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	resourceRepo := new(MockResourceRepository)
	uow := new(MockResourceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimResourceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	// the first receiver keeps the claim
	require.NotNil(t, aggregate.Receiver())
	assert.True(t, firstReceiverID.IsEqual(*aggregate.Receiver()))
	resourceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimResourceCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: receiverID, Role: user.RoleReceiver}
	aggregate := availableResource(t, donorID)

	cmd, err := commands.NewClaimResourceCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	// A concurrent claim committed between this handler's load and save: the
	// conditional update misses and reports the conflict.
	resourceRepo := new(MockResourceRepository)
	uow := new(MockResourceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		resourceRepo.On("Update", mock.Anything, aggregate, resource.Available).
			Return(errs.NewStateConflictError("save resource", resource.Available.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimResourceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
