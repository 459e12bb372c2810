package commands

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/guard"
)

var ErrClaimResourceCommandIsNotConstructed = errors.New(
	"ClaimResourceCommand must be created via NewClaimResourceCommand constructor",
)

// ClaimResourceCommand represents a receiver's request to claim an available
// resource. Claiming is the contended operation of the lifecycle: when several
// receivers race for the same resource, exactly one claim succeeds and the
// rest observe a state conflict.
//
// Example:
//
//	cmd, err := NewClaimResourceCommand(resourceID, caller)
//	if err != nil {
//	    return fmt.Errorf("invalid claim request: %w", err)
//	}
//
//	handler := NewClaimResourceCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStateConflict) {
//	    log.Println("Somebody else got there first")
//	}
type ClaimResourceCommand struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID
	caller     ports.Identity

	guard guard.ConstructorGuard
}

// NewClaimResourceCommand creates a command to claim a resource.
// Validates the resource ID and the caller identity.
func NewClaimResourceCommand(resourceID kernel.UUID, caller ports.Identity) (ClaimResourceCommand, error) {
	command := ClaimResourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
	); err != nil {
		return ClaimResourceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimResourceCommandIsNotConstructed if validation fails.
func (c ClaimResourceCommand) Validate() error {
	return c.guard.Validate(ErrClaimResourceCommandIsNotConstructed)
}

// ResourceID returns the identifier of the resource being claimed.
func (c ClaimResourceCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the claiming receiver.
func (c ClaimResourceCommand) Caller() ports.Identity {
	return c.caller
}

func (c *ClaimResourceCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *ClaimResourceCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
