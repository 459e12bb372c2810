package queries

import (
	"errors"

	"resourceshare/internal/pkg/guard"
)

var ErrGetAvailableResourcesQueryIsNotConstructed = errors.New(
	"GetAvailableResourcesQuery must be created via NewGetAvailableResourcesQuery constructor",
)

// GetAvailableResourcesQuery retrieves all resources open for claiming.
// This is the browse view receivers use to find goods.
//
// Example:
//
//	query := NewGetAvailableResourcesQuery()
//	handler := NewGetAvailableResourcesQueryHandler(db)
//
//	resources, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available resources: %w", err)
//	}
//	fmt.Printf("%d resources up for donation\n", len(resources))
type GetAvailableResourcesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableResourcesQuery creates a query for the browse view.
// This is a parameterless query that fetches all Available resources.
func NewGetAvailableResourcesQuery() GetAvailableResourcesQuery {
	return GetAvailableResourcesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableResourcesQueryIsNotConstructed if validation fails.
func (q GetAvailableResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableResourcesQueryIsNotConstructed)
}
