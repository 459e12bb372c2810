package queries

import (
	"context"

	"resourceshare/internal/core/domain/model/resource"

	"gorm.io/gorm"
)

// GetAvailableResourcesQueryHandler retrieves resources open for claiming.
// A resource listed here may already be taken by the time a claim arrives;
// the write side resolves that race, not this view.
type GetAvailableResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableResourcesQueryHandler creates a handler for the browse view.
// Requires a GORM database connection for query execution.
func NewGetAvailableResourcesQueryHandler(db *gorm.DB) GetAvailableResourcesQueryHandler {
	return GetAvailableResourcesQueryHandler{db: db}
}

// Handle executes the query to retrieve all Available resources.
// Results are sorted newest first.
func (h GetAvailableResourcesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableResourcesQuery,
) ([]ResourceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+resourceColumns+resourceJoins+`
		WHERE r.status = ?
		ORDER BY r.created_at DESC, r.id
	`, int(resource.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResourceRows(rows)
}
