package commands

import (
	"context"

	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// ConfirmPickupCommandHandler moves a claimed resource into transit on the
// donor's say-so. The aggregate enforces that only the publishing donor may
// confirm and only from the Claimed status; the handler gates the donor role
// and runs the load-mutate-save sequence inside a transaction.
type ConfirmPickupCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmations.
func NewConfirmPickupCommandHandler(uowFactory ResourceUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation: validates the command, checks the
// caller holds the donor role, loads the resource fresh, applies the
// transition, and saves conditionally on the loaded status.
func (h ConfirmPickupCommandHandler) Handle(
	ctx context.Context, command ConfirmPickupCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleDonor {
		return ResourceResult{}, errs.NewNotAuthorizedError("confirm pickup")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResourceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resourceRepo := uow.ResourceRepository()

	aggregate, err := resourceRepo.Get(ctx, command.ResourceID())
	if err != nil {
		return ResourceResult{}, err
	}

	loadedStatus := aggregate.Status()
	if err = aggregate.ConfirmPickup(command.Caller().UserID); err != nil {
		return ResourceResult{}, err
	}

	if err = resourceRepo.Update(ctx, aggregate, loadedStatus); err != nil {
		return ResourceResult{}, err
	}

	result, err := newResourceResult(ctx, uow.UserRepository(), aggregate)
	if err != nil {
		return ResourceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ResourceResult{}, err
	}

	return result, nil
}
