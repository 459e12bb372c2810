package commands

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents a donor's acknowledgement that the claimed
// good has been handed over to the receiver, moving it into transit.
//
// Example:
//
//	cmd, err := NewConfirmPickupCommand(resourceID, caller)
//	if err != nil {
//	    return fmt.Errorf("invalid pickup confirmation: %w", err)
//	}
//
//	handler := NewConfirmPickupCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID
	caller     ports.Identity

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm a pickup.
// Validates the resource ID and the caller identity.
func NewConfirmPickupCommand(resourceID kernel.UUID, caller ports.Identity) (ConfirmPickupCommand, error) {
	command := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPickupCommandIsNotConstructed if validation fails.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ResourceID returns the identifier of the resource being picked up.
func (c ConfirmPickupCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the confirming donor.
func (c ConfirmPickupCommand) Caller() ports.Identity {
	return c.caller
}

func (c *ConfirmPickupCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *ConfirmPickupCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
