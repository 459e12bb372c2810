package queries

import (
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/pkg/guard"
)

var ErrGetClaimedDonorResourcesQueryIsNotConstructed = errors.New(
	"GetClaimedDonorResourcesQuery must be created via NewGetClaimedDonorResourcesQuery constructor",
)

// GetClaimedDonorResourcesQuery retrieves a donor's resources awaiting pickup
// confirmation. This is the donor's work queue: each row is a handoff the
// donor still has to acknowledge.
type GetClaimedDonorResourcesQuery struct { //nolint:recvcheck //using for validation
	donorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClaimedDonorResourcesQuery creates a query for a donor's claimed
// resources. Validates the donor ID.
func NewGetClaimedDonorResourcesQuery(donorID kernel.UUID) (GetClaimedDonorResourcesQuery, error) {
	query := GetClaimedDonorResourcesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDonorID(donorID); err != nil {
		return GetClaimedDonorResourcesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClaimedDonorResourcesQueryIsNotConstructed if validation fails.
func (q GetClaimedDonorResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimedDonorResourcesQueryIsNotConstructed)
}

// DonorID returns the donor whose claimed resources are being listed.
func (q GetClaimedDonorResourcesQuery) DonorID() kernel.UUID {
	return q.donorID
}

func (q *GetClaimedDonorResourcesQuery) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}

	q.donorID = donorID
	return nil
}
