package commands

import (
	"context"
	"time"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/ports"
)

// ResourceResult is the read-only projection returned by every lifecycle
// command: the resource's own fields plus the donor and receiver display
// names, resolved at response-build time rather than stored redundantly.
type ResourceResult struct {
	ID           kernel.UUID
	Title        string
	Description  string
	Category     resource.Category
	Status       resource.Status
	AutoConfirm  bool
	DonorID      kernel.UUID
	DonorName    string
	ReceiverID   *kernel.UUID
	ReceiverName string
	Latitude     float64
	Longitude    float64
	Address      string
	ImageURL     string
	CreatedAt    time.Time
	ClaimedAt    *time.Time
	DeliveredAt  *time.Time
}

// newResourceResult builds the projection for a resource, resolving display
// names through the user repository bound to the current transaction.
func newResourceResult(
	ctx context.Context,
	userRepo ports.UserRepository,
	aggregate *resource.Resource,
) (ResourceResult, error) {
	donor, err := userRepo.Get(ctx, aggregate.Donor())
	if err != nil {
		return ResourceResult{}, err
	}

	result := ResourceResult{
		ID:          aggregate.ID(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		Status:      aggregate.Status(),
		AutoConfirm: aggregate.AutoConfirm(),
		DonorID:     aggregate.Donor(),
		DonorName:   donor.Name(),
		ReceiverID:  aggregate.Receiver(),
		Latitude:    aggregate.Location().Latitude(),
		Longitude:   aggregate.Location().Longitude(),
		Address:     aggregate.Address(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
		ClaimedAt:   aggregate.ClaimedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}

	if receiverID := aggregate.Receiver(); receiverID != nil {
		receiver, receiverErr := userRepo.Get(ctx, *receiverID)
		if receiverErr != nil {
			return ResourceResult{}, receiverErr
		}
		result.ReceiverName = receiver.Name()
	}

	return result, nil
}
