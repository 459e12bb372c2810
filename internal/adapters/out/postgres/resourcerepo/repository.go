package resourcerepo

import (
	"context"
	"errors"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResourceRepository implements ResourceRepository using GORM.
type GormResourceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormResourceRepository creates a new GORM resource repository.
func NewGormResourceRepository(db *gorm.DB, tracker aggregateTracker) *GormResourceRepository {
	return &GormResourceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly published resource to the database.
func (r *GormResourceRepository) Add(ctx context.Context, aggregate *resource.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing resource conditionally: the row is written only if
// its status still equals the status the aggregate was loaded in. When the
// condition misses — a concurrent writer moved the resource on — no row is
// touched and a StateConflictError is returned, so between two racing claims
// exactly one commits.
//
// Select("*") forces zero-valued fields (a cleared auto-confirm flag, an
// empty address) through the update.
func (r *GormResourceRepository) Update(
	ctx context.Context, aggregate *resource.Resource, expectedStatus resource.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ResourceDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("save resource", expectedStatus.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a resource by ID.
func (r *GormResourceRepository) Get(ctx context.Context, id kernel.UUID) (*resource.Resource, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ResourceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resource", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
