package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDonorResourcesQueryHandler retrieves a donor's published resources in
// every lifecycle status, newest first.
type GetDonorResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetDonorResourcesQueryHandler creates a handler for the donor's
// "my donations" view.
func NewGetDonorResourcesQueryHandler(db *gorm.DB) GetDonorResourcesQueryHandler {
	return GetDonorResourcesQueryHandler{db: db}
}

// Handle executes the query to retrieve all resources published by the donor.
func (h GetDonorResourcesQueryHandler) Handle(
	ctx context.Context,
	query GetDonorResourcesQuery,
) ([]ResourceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+resourceColumns+resourceJoins+`
		WHERE r.donor_id = ?
		ORDER BY r.created_at DESC, r.id
	`, query.DonorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResourceRows(rows)
}
