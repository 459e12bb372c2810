package queries

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/guard"
)

var ErrGetResourceByIDQueryIsNotConstructed = errors.New(
	"GetResourceByIDQuery must be created via NewGetResourceByIDQuery constructor",
)

// GetResourceByIDQuery retrieves a single resource with its donor and
// receiver names resolved.
type GetResourceByIDQuery struct { //nolint:recvcheck //using for validation
	resourceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetResourceByIDQuery creates a query for a single resource.
// Validates the resource ID.
func NewGetResourceByIDQuery(resourceID kernel.UUID) (GetResourceByIDQuery, error) {
	query := GetResourceByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setResourceID(resourceID); err != nil {
		return GetResourceByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetResourceByIDQueryIsNotConstructed if validation fails.
func (q GetResourceByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetResourceByIDQueryIsNotConstructed)
}

// ResourceID returns the identifier of the resource being fetched.
func (q GetResourceByIDQuery) ResourceID() kernel.UUID {
	return q.resourceID
}

func (q *GetResourceByIDQuery) setResourceID(resourceID kernel.UUID) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	q.resourceID = resourceID
	return nil
}
