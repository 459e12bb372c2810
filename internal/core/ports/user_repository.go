package ports

import (
	"context"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user records.
// The lifecycle core only reads users — to gate operations by role and to
// resolve display names for projections. Add exists for provisioning and
// test fixtures; profile management proper is an external concern.
type UserRepository interface {
	// Add persists a new user record to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	// Returns an ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
