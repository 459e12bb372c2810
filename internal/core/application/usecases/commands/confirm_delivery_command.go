package commands

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a receiver's acknowledgement that the
// good in transit has reached them, completing the lifecycle.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(resourceID, caller)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery confirmation: %w", err)
//	}
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID
	caller     ports.Identity

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
// Validates the resource ID and the caller identity.
func NewConfirmDeliveryCommand(resourceID kernel.UUID, caller ports.Identity) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ResourceID returns the identifier of the resource being delivered.
func (c ConfirmDeliveryCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the confirming receiver.
func (c ConfirmDeliveryCommand) Caller() ports.Identity {
	return c.caller
}

func (c *ConfirmDeliveryCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *ConfirmDeliveryCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
