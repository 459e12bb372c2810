package queries

import (
	"context"

	"resourceshare/internal/core/domain/model/resource"

	"gorm.io/gorm"
)

// GetClaimedDonorResourcesQueryHandler retrieves the donor's pickup work
// queue: resources claimed by a receiver and waiting on the donor's
// confirmation. Oldest claims first, so long-waiting receivers surface at
// the top.
type GetClaimedDonorResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimedDonorResourcesQueryHandler creates a handler for the donor's
// pickup work queue.
func NewGetClaimedDonorResourcesQueryHandler(db *gorm.DB) GetClaimedDonorResourcesQueryHandler {
	return GetClaimedDonorResourcesQueryHandler{db: db}
}

// Handle executes the query to retrieve the donor's resources in Claimed
// status.
func (h GetClaimedDonorResourcesQueryHandler) Handle(
	ctx context.Context,
	query GetClaimedDonorResourcesQuery,
) ([]ResourceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+resourceColumns+resourceJoins+`
		WHERE r.donor_id = ? AND r.status = ?
		ORDER BY r.claimed_at ASC, r.id
	`, query.DonorID().Bytes(), int(resource.Claimed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResourceRows(rows)
}
