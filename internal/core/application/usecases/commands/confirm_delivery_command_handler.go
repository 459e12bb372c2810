package commands

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler completes the lifecycle of a resource in
// transit. The aggregate enforces that only the claiming receiver may confirm
// and only from the InTransit status; the handler gates the receiver role and
// runs the load-mutate-save sequence inside a transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory ResourceUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation: validates the command, checks
// the caller holds the receiver role, loads the resource fresh, applies the
// transition, and saves conditionally on the loaded status. On success the
// resource is Delivered with its delivery timestamp set.
func (h ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context, command ConfirmDeliveryCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleReceiver {
		return ResourceResult{}, errs.NewNotAuthorizedError("confirm delivery")
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
	if err = aggregate.ConfirmDelivery(command.Caller().UserID, time.Now().UTC()); err != nil {
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
