package commands

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/guard"
)

var ErrToggleAutoConfirmCommandIsNotConstructed = errors.New(
	"ToggleAutoConfirmCommand must be created via NewToggleAutoConfirmCommand constructor",
)

// ToggleAutoConfirmCommand represents a donor's request to flip the
// auto-confirm flag on one of their available resources. With the flag on, a
// claim skips the manual pickup confirmation and moves straight into transit.
type ToggleAutoConfirmCommand struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID
	caller     ports.Identity

	guard guard.ConstructorGuard
}

// NewToggleAutoConfirmCommand creates a command to toggle auto-confirm.
// Validates the resource ID and the caller identity.
func NewToggleAutoConfirmCommand(resourceID kernel.UUID, caller ports.Identity) (ToggleAutoConfirmCommand, error) {
	command := ToggleAutoConfirmCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
	); err != nil {
		return ToggleAutoConfirmCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleAutoConfirmCommandIsNotConstructed if validation fails.
func (c ToggleAutoConfirmCommand) Validate() error {
	return c.guard.Validate(ErrToggleAutoConfirmCommandIsNotConstructed)
}

// ResourceID returns the identifier of the resource being reconfigured.
func (c ToggleAutoConfirmCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the toggling donor.
func (c ToggleAutoConfirmCommand) Caller() ports.Identity {
	return c.caller
}

func (c *ToggleAutoConfirmCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *ToggleAutoConfirmCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
