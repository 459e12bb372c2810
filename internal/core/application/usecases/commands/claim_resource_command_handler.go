package commands

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// ClaimResourceCommandHandler assigns an available resource to the calling
// receiver. The save is a compare-and-swap keyed on the status the aggregate
// was loaded in, so two claims racing past the in-memory check still cannot
// both win: the second writer's swap misses and surfaces a state conflict.
//
// Example:
//
//	handler := NewClaimResourceCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrStateConflict):
//	    log.Println("Resource is no longer available")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	default:
//	    log.Printf("Claimed, now %s", result.Status)
//	}
type ClaimResourceCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewClaimResourceCommandHandler creates a handler for claim operations.
func NewClaimResourceCommandHandler(uowFactory ResourceUoWFactory) ClaimResourceCommandHandler {
	return ClaimResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command: validates it, checks the caller holds
// the receiver role, loads the resource fresh, applies the claim transition,
// and saves conditionally on the loaded status. With auto-confirm enabled the
// resource lands directly in InTransit, otherwise in Claimed.
func (h ClaimResourceCommandHandler) Handle(
	ctx context.Context, command ClaimResourceCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleReceiver {
		return ResourceResult{}, errs.NewNotAuthorizedError("claim resource")
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
	if err = aggregate.Claim(command.Caller().UserID, time.Now().UTC()); err != nil {
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
