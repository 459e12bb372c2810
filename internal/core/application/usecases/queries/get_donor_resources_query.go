package queries

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/guard"
)

var ErrGetDonorResourcesQueryIsNotConstructed = errors.New(
	"GetDonorResourcesQuery must be created via NewGetDonorResourcesQuery constructor",
)

// GetDonorResourcesQuery retrieves every resource a donor has published,
// across all lifecycle statuses. This is the donor's "my donations" view.
type GetDonorResourcesQuery struct { //nolint:recvcheck //using for validation
	donorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDonorResourcesQuery creates a query for a donor's published resources.
// Validates the donor ID.
func NewGetDonorResourcesQuery(donorID kernel.UUID) (GetDonorResourcesQuery, error) {
	query := GetDonorResourcesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDonorID(donorID); err != nil {
		return GetDonorResourcesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDonorResourcesQueryIsNotConstructed if validation fails.
func (q GetDonorResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetDonorResourcesQueryIsNotConstructed)
}

// DonorID returns the donor whose resources are being listed.
func (q GetDonorResourcesQuery) DonorID() kernel.UUID {
	return q.donorID
}

func (q *GetDonorResourcesQuery) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}

	q.donorID = donorID
	return nil
}
