// Package resourcerepo provides data transfer objects and mapping functions
// for resource persistence. It implements the repository pattern for the
// resource aggregate, handling the conversion between domain entities and
// database rows, and carries the conditional save the lifecycle's concurrency
// discipline rests on.
package resourcerepo

import (
	"time"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"

	"github.com/google/uuid"
)

// ResourceDTO represents the database structure for persisting resource
// aggregates. Status is indexed for the browse and work-queue views; donor
// and receiver are indexed for the per-user views.
type ResourceDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DonorID     uuid.UUID  `gorm:"type:uuid;index"`
	ReceiverID  *uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Category    int
	Status      int `gorm:"index"`
	AutoConfirm bool
	Latitude    float64
	Longitude   float64
	Address     string
	ImageURL    string
	CreatedAt   time.Time
	ClaimedAt   *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for resource entities.
func (ResourceDTO) TableName() string {
	return "resources"
}

// fromDomain converts a resource aggregate to its database representation.
func fromDomain(aggregate *resource.Resource) ResourceDTO {
	var receiverID *uuid.UUID
	if id := aggregate.Receiver(); id != nil {
		raw := id.Bytes()
		receiverID = &raw
	}

	return ResourceDTO{
		ID:          aggregate.ID().Bytes(),
		DonorID:     aggregate.Donor().Bytes(),
		ReceiverID:  receiverID,
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Category:    int(aggregate.Category()),
		Status:      int(aggregate.Status()),
		AutoConfirm: aggregate.AutoConfirm(),
		Latitude:    aggregate.Location().Latitude(),
		Longitude:   aggregate.Location().Longitude(),
		Address:     aggregate.Address(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
		ClaimedAt:   aggregate.ClaimedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a resource aggregate. Reconstruction
// goes through RestoreResource so a row violating the aggregate invariants
// surfaces as an error instead of a corrupt aggregate.
func toDomain(dto ResourceDTO) (*resource.Resource, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	var receiverID *kernel.UUID
	if dto.ReceiverID != nil {
		rID, receiverErr := kernel.UUIDFromBytes((*dto.ReceiverID)[:])
		if receiverErr != nil {
			return nil, receiverErr
		}

		receiverID = &rID
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return resource.RestoreResource(
		id,
		donorID,
		dto.Title,
		dto.Description,
		resource.Category(dto.Category),
		resource.Status(dto.Status),
		dto.AutoConfirm,
		location,
		dto.Address,
		dto.ImageURL,
		receiverID,
		dto.CreatedAt,
		dto.ClaimedAt,
		dto.DeliveredAt,
	)
}
