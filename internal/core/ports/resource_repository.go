// Package ports defines repository and collaborator interfaces for the
// resource sharing domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
)

// ResourceRepository defines the persistence contract for resource aggregates.
//
// Update is deliberately a compare-and-swap: the caller states the status the
// aggregate was loaded in, and the store only writes if the persisted row still
// carries that status. This is the single mechanism that serializes racing
// lifecycle transitions on the same resource — two concurrent claims on one
// Available resource resolve to exactly one winner, the loser receiving a
// StateConflictError.
type ResourceRepository interface {
	// Add persists a new resource aggregate to storage.
	// The resource must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *resource.Resource) error

	// Update persists changes to an existing resource aggregate, conditional
	// on the persisted row still being in expectedStatus. Returns a
	// StateConflictError when the condition fails (the row was transitioned
	// concurrently) and a not-found error when the row does not exist.
	Update(ctx context.Context, aggregate *resource.Resource, expectedStatus resource.Status) error

	// Get retrieves a resource aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*resource.Resource, error)
}
