package commands

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// CancelResourceCommandHandler withdraws a resource from donation. The
// aggregate enforces donor ownership and the Available-or-Claimed window; the
// conditional save keeps a cancellation from racing a claim or a pickup
// confirmation past the window it was decided in.
type CancelResourceCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewCancelResourceCommandHandler creates a handler for cancellations.
func NewCancelResourceCommandHandler(uowFactory ResourceUoWFactory) CancelResourceCommandHandler {
	return CancelResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation: validates the command, checks the caller
// holds the donor role, loads the resource fresh, applies the transition, and
// saves conditionally on the loaded status. On success the resource is
// Cancelled with its terminal timestamp set.
func (h CancelResourceCommandHandler) Handle(
	ctx context.Context, command CancelResourceCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleDonor {
		return ResourceResult{}, errs.NewNotAuthorizedError("cancel resource")
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
	if err = aggregate.Cancel(command.Caller().UserID, time.Now().UTC()); err != nil {
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
