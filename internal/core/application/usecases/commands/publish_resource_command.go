package commands

import (
	"errors"
	"strings"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"
	"resourceshare/internal/pkg/guard"
)

var ErrPublishResourceCommandIsNotConstructed = errors.New(
	"PublishResourceCommand must be created via NewPublishResourceCommand constructor",
)

// PublishResourceCommand represents a donor's request to publish a physical
// good for donation. The resource enters the lifecycle in Available status
// with auto-confirm disabled.
//
// Example:
//
//	resourceID := kernel.NewUUID()
//	location, _ := kernel.NewGeoPoint(46.05, 14.51)
//	cmd, err := NewPublishResourceCommand(
//	    resourceID, caller, "Winter coat", "Warm, size M",
//	    resource.CategoryClothing, location, "Main St 5", "")
//	if err != nil {
//	    return fmt.Errorf("invalid resource data: %w", err)
//	}
//
//	handler := NewPublishResourceCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type PublishResourceCommand struct { //nolint:recvcheck //using for validation
	resourceID  kernel.UUID
	caller      ports.Identity
	title       string
	description string
	category    resource.Category
	location    kernel.GeoPoint
	address     string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewPublishResourceCommand creates a command to publish a new resource.
// Validates the resource ID, the caller identity, the required descriptive
// fields, the category, and the pickup location. Address and image URL are
// optional. Returns an error if any validation fails.
func NewPublishResourceCommand(
	resourceID kernel.UUID,
	caller ports.Identity,
	title string,
	description string,
	category resource.Category,
	location kernel.GeoPoint,
	address string,
	imageURL string,
) (PublishResourceCommand, error) {
	command := PublishResourceCommand{
		address:  address,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setResourceID(resourceID),
		command.setCaller(caller),
		command.setTitle(title),
		command.setDescription(description),
		command.setCategory(category),
		command.setLocation(location),
	); err != nil {
		return PublishResourceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishResourceCommandIsNotConstructed if validation fails.
func (c PublishResourceCommand) Validate() error {
	return c.guard.Validate(ErrPublishResourceCommandIsNotConstructed)
}

// ResourceID returns the identifier the new resource will be created with.
func (c PublishResourceCommand) ResourceID() kernel.UUID {
	return c.resourceID
}

// Caller returns the resolved identity of the publishing donor.
func (c PublishResourceCommand) Caller() ports.Identity {
	return c.caller
}

// Title returns the short human-readable name of the good.
func (c PublishResourceCommand) Title() string {
	return c.title
}

// Description returns the free-text description of the good.
func (c PublishResourceCommand) Description() string {
	return c.description
}

// Category returns the category of the good.
func (c PublishResourceCommand) Category() resource.Category {
	return c.category
}

// Location returns the geographic pickup point.
func (c PublishResourceCommand) Location() kernel.GeoPoint {
	return c.location
}

// Address returns the optional free-text pickup address.
func (c PublishResourceCommand) Address() string {
	return c.address
}

// ImageURL returns the optional image reference.
func (c PublishResourceCommand) ImageURL() string {
	return c.imageURL
}

func (c *PublishResourceCommand) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	c.resourceID = resourceID
	return nil
}

func (c *PublishResourceCommand) setCaller(caller ports.Identity) error {
	if err := errors.Join(
		caller.UserID.Validate(),
		caller.Role.Validate(),
	); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *PublishResourceCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *PublishResourceCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *PublishResourceCommand) setCategory(category resource.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *PublishResourceCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
