package queries

import (
	"context"

	"resourceshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetResourceByIDQueryHandler retrieves a single resource by its identifier.
// Resources remain readable in every status, terminal ones included.
type GetResourceByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetResourceByIDQueryHandler creates a handler for single-resource
// lookups.
func NewGetResourceByIDQueryHandler(db *gorm.DB) GetResourceByIDQueryHandler {
	return GetResourceByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the ID does
// not resolve to a resource.
func (h GetResourceByIDQueryHandler) Handle(
	ctx context.Context,
	query GetResourceByIDQuery,
) (ResourceResponse, error) {
	if err := query.Validate(); err != nil {
		return ResourceResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+resourceColumns+resourceJoins+`
		WHERE r.id = ?
	`, query.ResourceID().Bytes()).Rows()
	if err != nil {
		return ResourceResponse{}, err
	}
	defer rows.Close()

	responses, err := scanResourceRows(rows)
	if err != nil {
		return ResourceResponse{}, err
	}
	if len(responses) == 0 {
		return ResourceResponse{}, errs.NewObjectNotFoundError("resourceID", query.ResourceID())
	}

	return responses[0], nil
}
