package queries

import (
	"errors"

	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery counts resources per lifecycle status. Used by the
// periodic reporting job and operational tooling.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusSummaryQuery creates a query for the per-status resource counts.
func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusSummaryQueryIsNotConstructed if validation fails.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusSummaryResponse is one row of the per-status breakdown.
type StatusSummaryResponse struct {
	Status resource.Status
	Count  int64
}
