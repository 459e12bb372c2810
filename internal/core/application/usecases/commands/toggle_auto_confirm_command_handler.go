package commands

import (
	"context"

	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// ToggleAutoConfirmCommandHandler flips the auto-confirm flag on an available
// resource. The aggregate enforces donor ownership and the Available-only
// window; the conditional save keeps a toggle from racing a claim — if a
// receiver claims between load and save, the swap misses and the toggle is
// rejected with a state conflict instead of silently rewriting a claimed row.
type ToggleAutoConfirmCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewToggleAutoConfirmCommandHandler creates a handler for auto-confirm toggles.
func NewToggleAutoConfirmCommandHandler(uowFactory ResourceUoWFactory) ToggleAutoConfirmCommandHandler {
	return ToggleAutoConfirmCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle: validates the command, checks the caller holds
// the donor role, loads the resource fresh, flips the flag, and saves
// conditionally on the loaded status.
func (h ToggleAutoConfirmCommandHandler) Handle(
	ctx context.Context, command ToggleAutoConfirmCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleDonor {
		return ResourceResult{}, errs.NewNotAuthorizedError("toggle auto-confirm")
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
	if err = aggregate.ToggleAutoConfirm(command.Caller().UserID); err != nil {
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
