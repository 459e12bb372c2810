package resource

import (
	"resourceshare/internal/pkg/errs"
)

// Status represents the lifecycle state of a donated resource.
// It implements a state machine with defined transitions to ensure resources
// follow the correct donation workflow.
//
// State transitions:
//
//	Available ──┬──> Claimed ──┬──> InTransit ──> Delivered
//	            │      │       │
//	            │      │   (auto-confirm claim skips Claimed)
//	            │      v
//	            └──> Cancelled
//
// Delivered and Cancelled are terminal: no outgoing transitions exist.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status when a resource is first published.
	// Resources in this status are waiting to be claimed by a receiver.
	Available

	// Claimed indicates a receiver has claimed the resource and the handoff
	// awaits the donor's pickup confirmation.
	Claimed

	// InTransit indicates the handoff has been confirmed (by the donor, or
	// automatically for auto-confirm resources) and the resource is on its way.
	InTransit

	// Delivered indicates the receiver has confirmed successful delivery.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the donor withdrew the resource before it went in
	// transit. This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Claimed:   "Claimed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Claimed:   "Claimed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Available, Claimed, InTransit, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Claim transitions the status when a receiver claims the resource.
//
// Valid transitions:
//   - Available -> Claimed (manual handoff: donor must confirm pickup)
//   - Available -> InTransit (autoConfirm: the pickup confirmation is skipped)
//
// Any other current status is a state conflict: a resource can be claimed by
// exactly one receiver, and only while it is still available.
//
// Returns:
//   - the new status on a valid transition
//   - (0, StateConflictError) if the resource is not Available
func (s Status) Claim(autoConfirm bool) (Status, error) {
	if s != Available {
		return 0, errs.NewStateConflictError("claim", s.String())
	}

	if autoConfirm {
		return InTransit, nil
	}
	return Claimed, nil
}

// ConfirmPickup transitions the status when the donor confirms the handoff.
//
// Valid transitions:
//   - Claimed -> InTransit
//
// Auto-confirm resources never dwell in Claimed, so this transition only
// exists for the manual handoff protocol.
//
// Returns:
//   - (InTransit, nil) on a valid transition
//   - (0, StateConflictError) if the resource is not Claimed
func (s Status) ConfirmPickup() (Status, error) {
	if s != Claimed {
		return 0, errs.NewStateConflictError("confirm pickup", s.String())
	}

	return InTransit, nil
}

// ConfirmDelivery transitions the status when the receiver confirms delivery.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns:
//   - (Delivered, nil) on a valid transition
//   - (0, StateConflictError) if the resource is not InTransit
func (s Status) ConfirmDelivery() (Status, error) {
	if s != InTransit {
		return 0, errs.NewStateConflictError("confirm delivery", s.String())
	}

	return Delivered, nil
}

// Cancel transitions the status when the donor withdraws the resource.
//
// Valid transitions:
//   - Available -> Cancelled
//   - Claimed -> Cancelled
//
// Resources already in transit, delivered, or cancelled cannot be cancelled.
//
// Returns:
//   - (Cancelled, nil) on a valid transition
//   - (0, StateConflictError) otherwise
func (s Status) Cancel() (Status, error) {
	if s != Available && s != Claimed {
		return 0, errs.NewStateConflictError("cancel", s.String())
	}

	return Cancelled, nil
}

// ValidateToggleAutoConfirm checks whether the auto-confirm flag may be
// flipped in the current status. The flag is only mutable while the resource
// is still Available: once claimed, the handoff protocol is locked in.
func (s Status) ValidateToggleAutoConfirm() error {
	if s != Available {
		return errs.NewStateConflictError("toggle auto-confirm", s.String())
	}
	return nil
}

// ValidateCanHaveReceiver validates the consistency between resource status
// and receiver assignment. Enforces which statuses require a claiming receiver.
//
// Business rules:
//   - Available resources must not have a receiver
//   - Claimed, InTransit and Delivered resources must have a receiver
//   - Cancelled resources may have one (cancelled after a claim) or not
//
// Parameters:
//   - receiver: whether the resource has a receiver assigned
//
// Returns a validation error if status and receiver assignment are inconsistent.
func (s Status) ValidateCanHaveReceiver(receiver bool) error {
	if receiver && s == Available {
		return errs.NewValueIsInvalidError("available resource cannot have a receiver")
	}

	if !receiver && (s == Claimed || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidError(s.String() + " resource must have a receiver")
	}

	return nil
}
