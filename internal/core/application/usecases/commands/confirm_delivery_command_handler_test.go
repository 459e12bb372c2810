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

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: receiverID, Role: user.RoleReceiver}
	aggregate := inTransitResource(t, donorID, receiverID)
	donor := testUser(t, donorID, "Alice", user.RoleDonor)
	receiver := testUser(t, receiverID, "Bob", user.RoleReceiver)

	cmd, err := commands.NewConfirmDeliveryCommand(aggregate.ID(), caller)
	require.NoError(t, err)

	resourceRepo := new(MockResourceRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockResourceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		resourceRepo.On("Update", mock.Anything, aggregate, resource.InTransit).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, donorID).Return(donor, nil).Once(),
		userRepo.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, resource.Delivered, result.Status)
	assert.NotNil(t, result.DeliveredAt)
	resourceRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_NotTheReceiver(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	otherReceiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: otherReceiverID, Role: user.RoleReceiver}
	aggregate := inTransitResource(t, donorID, receiverID)

	cmd, err := commands.NewConfirmDeliveryCommand(aggregate.ID(), caller)
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

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, resource.InTransit, aggregate.Status())
	resourceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_DonorRoleRejected(t *testing.T) {
	ctx := t.Context()
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	cmd, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), caller)
	require.NoError(t, err)

	factory := new(MockResourceUoWFactory)
	h := commands.NewConfirmDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmDeliveryCommandHandler_Handle_NotInTransit(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	caller := ports.Identity{UserID: receiverID, Role: user.RoleReceiver}
	aggregate := claimedResource(t, donorID, receiverID)

	cmd, err := commands.NewConfirmDeliveryCommand(aggregate.ID(), caller)
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

	h := commands.NewConfirmDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}
