package commands

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/pkg/errs"
)

// PublishResourceCommandHandler creates new resource aggregates and persists
// them within a transaction. Publication is gated to donors; the caller
// becomes the resource's donor and keeps donor-side control of the lifecycle.
//
// Example:
//
//	handler := NewPublishResourceCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to publish resource: %w", err)
//	}
//	fmt.Printf("Resource %s published as %s", result.ID, result.Status)
type PublishResourceCommandHandler struct {
	uowFactory ResourceUoWFactory
}

// NewPublishResourceCommandHandler creates a handler for resource publication.
func NewPublishResourceCommandHandler(uowFactory ResourceUoWFactory) PublishResourceCommandHandler {
	return PublishResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publish command: validates it, checks the caller holds
// the donor role, creates the aggregate in Available status, and persists it.
// Returns the projection of the freshly published resource.
func (h PublishResourceCommandHandler) Handle(
	ctx context.Context, command PublishResourceCommand,
) (ResourceResult, error) {
	if err := command.Validate(); err != nil {
		return ResourceResult{}, err
	}

	if command.Caller().Role != user.RoleDonor {
		return ResourceResult{}, errs.NewNotAuthorizedError("publish resource")
	}

	aggregate, err := resource.NewResource(
		command.ResourceID(),
		command.Caller().UserID,
		command.Title(),
		command.Description(),
		command.Category(),
		command.Location(),
		command.Address(),
		command.ImageURL(),
		time.Now().UTC(),
	)
	if err != nil {
		return ResourceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ResourceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ResourceRepository().Add(ctx, aggregate); err != nil {
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
