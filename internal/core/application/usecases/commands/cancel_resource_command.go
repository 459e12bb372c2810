package commands

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/guard"
)

var ErrCancelResourceCommandIsNotConstructed = errors.New(
	"CancelResourceCommand must be created via NewCancelResourceCommand constructor",
)

// CancelResourceCommand represents a donor's request to withdraw a resource
// from donation. Cancellation is allowed while the resource is Available or
// Claimed; once the good is physically in transit it can no longer be
// withdrawn.
type CancelResourceCommand struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID
	caller     ports.Identity

	guard guard.ConstructorGuard
}

// NewCancelResourceCommand creates a command to cancel a resource.
// Validates the resource ID and the caller identity.
func NewCancelResourceCommand(resourceID kernel.UUID, caller ports.Identity) (CancelResourceCommand, error) {
	command := CancelResourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
	); err != nil {
		return CancelResourceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelResourceCommandIsNotConstructed if validation fails.
func (c CancelResourceCommand) Validate() error {
	return c.guard.Validate(ErrCancelResourceCommandIsNotConstructed)
}

// ResourceID returns the identifier of the resource being cancelled.
func (c CancelResourceCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the cancelling donor.
func (c CancelResourceCommand) Caller() ports.Identity {
	return c.caller
}

func (c *CancelResourceCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *CancelResourceCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
