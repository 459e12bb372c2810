package queries

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/guard"
)

var ErrGetReceiverResourcesQueryIsNotConstructed = errors.New(
	"GetReceiverResourcesQuery must be created via NewGetReceiverResourcesQuery constructor",
)

// GetReceiverResourcesQuery retrieves every resource a receiver has claimed,
// whether still in progress or already delivered. This is the receiver's
// "my received" view.
type GetReceiverResourcesQuery struct { //nolint:recvcheck //using for validation
	receiverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiverResourcesQuery creates a query for a receiver's claimed
// resources. Validates the receiver ID.
func NewGetReceiverResourcesQuery(receiverID kernel.UUID) (GetReceiverResourcesQuery, error) {
	query := GetReceiverResourcesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setReceiverID(receiverID); err != nil {
		return GetReceiverResourcesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiverResourcesQueryIsNotConstructed if validation fails.
func (q GetReceiverResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiverResourcesQueryIsNotConstructed)
}

// ReceiverID returns the receiver whose resources are being listed.
func (q GetReceiverResourcesQuery) ReceiverID() kernel.UUID {
	return q.receiverID
}

func (q *GetReceiverResourcesQuery) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}

	q.receiverID = receiverID
	return nil
}
