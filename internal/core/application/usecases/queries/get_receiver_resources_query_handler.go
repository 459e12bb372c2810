package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReceiverResourcesQueryHandler retrieves the resources a receiver has
// claimed, most recent claims first.
type GetReceiverResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiverResourcesQueryHandler creates a handler for the receiver's
// "my received" view.
func NewGetReceiverResourcesQueryHandler(db *gorm.DB) GetReceiverResourcesQueryHandler {
	return GetReceiverResourcesQueryHandler{db: db}
}

// Handle executes the query to retrieve all resources claimed by the receiver.
func (h GetReceiverResourcesQueryHandler) Handle(
	ctx context.Context,
	query GetReceiverResourcesQuery,
) ([]ResourceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+resourceColumns+resourceJoins+`
		WHERE r.receiver_id = ?
		ORDER BY r.claimed_at DESC, r.id
	`, query.ReceiverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResourceRows(rows)
}
