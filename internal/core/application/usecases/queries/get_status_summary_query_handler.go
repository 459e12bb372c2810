package queries

import (
	"context"

	"resourceshare/internal/core/domain/model/resource"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler counts resources per lifecycle status.
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusSummaryQueryHandler creates a handler for the status breakdown.
func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle executes the aggregation. Statuses with no resources are absent from
// the result.
func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusSummaryQuery,
) ([]StatusSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]StatusSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM resources
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summaries = append(summaries, StatusSummaryResponse{
			Status: resource.Status(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
