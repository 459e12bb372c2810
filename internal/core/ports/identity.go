package ports

import (
	"context"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"
)

// Identity is the resolved caller identity handed to every operation:
// a stable user id plus the role that gates which transitions the caller may
// invoke. Resolution has already rejected unknown and inactive users.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
}

// IdentityProvider resolves an opaque caller token into an Identity.
// Resolution fails for unknown, malformed, or inactive callers; those errors
// are propagated to the transport layer unchanged.
type IdentityProvider interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}
