package resource

import (
	"errors"
	"strings"
	"time"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/errs"
	"resourceshare/internal/pkg/guard"
)

var (
	// ErrResourceIsNotConstructed is returned when a Resource instance was not
	// created through the NewResource or RestoreResource factory methods.
	ErrResourceIsNotConstructed = errors.New(
		"Resource must be created via NewResource or RestoreResource constructor")
)

// Resource represents a physical good published for donation. It is the
// aggregate root that manages the donation lifecycle from publication through
// claim and handoff to delivery or cancellation.
//
// Resource follows these invariants:
//   - Must have a valid unique identifier and donor identifier
//   - Title and description are required, category must be in the closed set
//   - The donor is set at creation and never changes
//   - The receiver is nil until the resource is claimed; once set it never changes
//   - claimedAt is set exactly once, at claim time
//   - deliveredAt is set exactly once, when a terminal state is reached
//     (it doubles as the terminal timestamp for cancellations)
//   - The auto-confirm flag may only be flipped while the resource is Available
//   - Status transitions follow the Status state machine
//
// Every mutating method evaluates its ownership predicate before its state
// predicate, so an unauthorized caller cannot learn the current state from the
// error it receives.
type Resource struct {
	// id is the unique identifier for the resource
	id kernel.UUID

	// donorID identifies the donor who published the resource
	donorID kernel.UUID

	// receiverID identifies the claiming receiver (nil until claimed)
	receiverID *kernel.UUID

	// title is the short human-readable name of the good
	title string

	// description is the free-text description of the good
	description string

	// category classifies the good within the closed category set
	category Category

	// status represents the current state in the donation lifecycle
	status Status

	// autoConfirm lets the donor skip the manual pickup-confirmation step
	autoConfirm bool

	// location is the geographic pickup point
	location kernel.GeoPoint

	// address is the free-text pickup address (optional)
	address string

	// imageURL references a picture of the good (optional)
	imageURL string

	// createdAt is set once at publication
	createdAt time.Time

	// claimedAt is set once, when the resource is claimed
	claimedAt *time.Time

	// deliveredAt is set once, when a terminal state is reached
	deliveredAt *time.Time

	// guard ensures the resource was created via a constructor
	guard guard.ConstructorGuard
}

// NewResource creates a newly published Resource with validation. The resource
// starts Available with auto-confirm disabled and no receiver.
//
// Parameters:
//   - id: unique identifier for the resource (must be a valid UUID)
//   - donorID: identifier of the publishing donor (must be a valid UUID)
//   - title, description: required descriptive fields
//   - category: one of the closed category set
//   - location: validated geographic pickup point
//   - address, imageURL: optional free-text fields
//   - createdAt: publication timestamp (must be non-zero)
//
// Returns a validation error if any parameter is invalid.
func NewResource(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	description string,
	category Category,
	location kernel.GeoPoint,
	address string,
	imageURL string,
	createdAt time.Time,
) (*Resource, error) {
	resource := &Resource{
		status:      Available,
		autoConfirm: false,
		address:     address,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resource.setID(id),
		resource.setDonorID(donorID),
		resource.setTitle(title),
		resource.setDescription(description),
		resource.setCategory(category),
		resource.setLocation(location),
		resource.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return resource, nil
}

// RestoreResource reconstructs a Resource from persisted state.
// Unlike NewResource it accepts any point of the lifecycle, and it
// cross-validates the loaded state against the aggregate invariants: the
// receiver must be consistent with the status, claimedAt must accompany a
// receiver, and deliveredAt must be present exactly for terminal states.
func RestoreResource(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	description string,
	category Category,
	status Status,
	autoConfirm bool,
	location kernel.GeoPoint,
	address string,
	imageURL string,
	receiverID *kernel.UUID,
	createdAt time.Time,
	claimedAt *time.Time,
	deliveredAt *time.Time,
) (*Resource, error) {
	resource := &Resource{
		autoConfirm: autoConfirm,
		address:     address,
		imageURL:    imageURL,
		claimedAt:   claimedAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resource.setID(id),
		resource.setDonorID(donorID),
		resource.setTitle(title),
		resource.setDescription(description),
		resource.setCategory(category),
		resource.setStatus(status),
		resource.setLocation(location),
		resource.setCreatedAt(createdAt),
		resource.setReceiverID(receiverID),
	); err != nil {
		return nil, err
	}

	if err := resource.validateTimestamps(); err != nil {
		return nil, err
	}

	return resource, nil
}

// Validate ensures the Resource instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and should be called when aggregates cross the persistence
// boundary.
func (r *Resource) Validate() error {
	if r == nil {
		return ErrResourceIsNotConstructed
	}
	return r.guard.Validate(ErrResourceIsNotConstructed)
}

// IsEqual compares two resources by their unique identifiers.
func (r *Resource) IsEqual(other *Resource) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the resource's unique identifier.
func (r *Resource) ID() kernel.UUID {
	return r.id
}

// Donor returns the identifier of the publishing donor.
func (r *Resource) Donor() kernel.UUID {
	return r.donorID
}

// Receiver returns the claiming receiver's identifier.
// Returns nil if the resource has not been claimed.
func (r *Resource) Receiver() *kernel.UUID {
	return r.receiverID
}

// Title returns the resource title.
func (r *Resource) Title() string {
	return r.title
}

// Description returns the resource description.
func (r *Resource) Description() string {
	return r.description
}

// Category returns the resource category.
func (r *Resource) Category() Category {
	return r.category
}

// Status returns the current status of the resource.
func (r *Resource) Status() Status {
	return r.status
}

// AutoConfirm reports whether claiming skips the pickup-confirmation step.
func (r *Resource) AutoConfirm() bool {
	return r.autoConfirm
}

// Location returns the geographic pickup point.
func (r *Resource) Location() kernel.GeoPoint {
	return r.location
}

// Address returns the free-text pickup address.
func (r *Resource) Address() string {
	return r.address
}

// ImageURL returns the image reference for the resource.
func (r *Resource) ImageURL() string {
	return r.imageURL
}

// CreatedAt returns the publication timestamp.
func (r *Resource) CreatedAt() time.Time {
	return r.createdAt
}

// ClaimedAt returns the claim timestamp, or nil if never claimed.
func (r *Resource) ClaimedAt() *time.Time {
	return r.claimedAt
}

// DeliveredAt returns the terminal timestamp, or nil while the lifecycle is
// still in progress. For cancelled resources it records the cancellation time.
func (r *Resource) DeliveredAt() *time.Time {
	return r.deliveredAt
}

// Claim assigns the resource to a receiver.
//
// Business rules:
//   - The receiver ID must be valid
//   - The resource must be Available; any later state is a conflict, so the
//     first successful claimer wins and the receiver is never overwritten
//   - With auto-confirm enabled the status moves directly to InTransit,
//     otherwise it moves to Claimed and awaits the donor's pickup confirmation
//
// On success the receiver and claimedAt are set exactly once.
func (r *Resource) Claim(receiverID kernel.UUID, now time.Time) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Claim(r.autoConfirm)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.receiverID = &receiverID
	r.claimedAt = &now
	return nil
}

// ConfirmPickup records the donor's confirmation of the handoff, moving the
// resource from Claimed to InTransit.
//
// Only the resource's donor may confirm; the ownership predicate runs before
// the state predicate.
func (r *Resource) ConfirmPickup(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if !r.donorID.IsEqual(callerID) {
		return errs.NewNotAuthorizedError("confirm pickup")
	}

	newStatus, err := r.status.ConfirmPickup()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// ConfirmDelivery records the receiver's confirmation of delivery, moving the
// resource from InTransit to Delivered and setting deliveredAt.
//
// Only the claiming receiver may confirm. A resource without a receiver (never
// claimed) fails the ownership predicate, not the state predicate.
func (r *Resource) ConfirmDelivery(callerID kernel.UUID, now time.Time) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if r.receiverID == nil || !r.receiverID.IsEqual(callerID) {
		return errs.NewNotAuthorizedError("confirm delivery")
	}

	newStatus, err := r.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.deliveredAt = &now
	return nil
}

// Cancel withdraws the resource from donation.
//
// Only the resource's donor may cancel, and only while the resource is
// Available or Claimed. Cancellation past that point would strand a handoff
// already in progress. deliveredAt records the cancellation time.
func (r *Resource) Cancel(callerID kernel.UUID, now time.Time) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if !r.donorID.IsEqual(callerID) {
		return errs.NewNotAuthorizedError("cancel resource")
	}

	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.deliveredAt = &now
	return nil
}

// ToggleAutoConfirm flips the auto-confirm flag.
//
// Only the resource's donor may toggle, and only while the resource is
// Available. Repeated calls alternate the flag.
func (r *Resource) ToggleAutoConfirm(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if !r.donorID.IsEqual(callerID) {
		return errs.NewNotAuthorizedError("toggle auto-confirm")
	}

	if err := r.status.ValidateToggleAutoConfirm(); err != nil {
		return err
	}

	r.autoConfirm = !r.autoConfirm
	return nil
}

// setID validates and sets the resource's unique identifier.
// This is a private method used only during construction.
func (r *Resource) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setDonorID validates and sets the publishing donor's identifier.
func (r *Resource) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	r.donorID = donorID
	return nil
}

// setReceiverID validates and sets the optional receiver, cross-checking it
// against the current status.
func (r *Resource) setReceiverID(receiverID *kernel.UUID) error {
	if receiverID != nil {
		if err := receiverID.Validate(); err != nil {
			return err
		}
	}
	if err := r.status.ValidateCanHaveReceiver(receiverID != nil); err != nil {
		return err
	}
	r.receiverID = receiverID
	return nil
}

// setTitle validates and sets the title. Titles must be non-blank.
func (r *Resource) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	r.title = title
	return nil
}

// setDescription validates and sets the description. Descriptions must be non-blank.
func (r *Resource) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

// setCategory validates and sets the category.
func (r *Resource) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	r.category = category
	return nil
}

// setStatus validates and sets the status when restoring from persistence.
func (r *Resource) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// setLocation validates and sets the pickup point.
func (r *Resource) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

// setCreatedAt validates and sets the publication timestamp.
func (r *Resource) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}

// validateTimestamps cross-checks the lifecycle timestamps against the status
// when restoring from persistence:
//   - a receiver implies a claim timestamp
//   - deliveredAt is present if and only if the status is terminal
func (r *Resource) validateTimestamps() error {
	if r.receiverID != nil && r.claimedAt == nil {
		return errs.NewValueIsRequiredError("claimedAt")
	}
	if r.status.IsTerminal() && r.deliveredAt == nil {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	if !r.status.IsTerminal() && r.deliveredAt != nil {
		return errs.NewValueIsInvalidError("deliveredAt is set for a non-terminal status")
	}
	return nil
}
