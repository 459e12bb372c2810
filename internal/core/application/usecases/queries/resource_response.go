// Package queries contains the read operations of the resource lifecycle.
// It implements the Query pattern for the read side of the CQRS architecture:
// handlers run raw SQL directly against the database, bypassing the aggregate
// and the unit of work, and return flat response projections.
package queries

import (
	"database/sql"
	"time"

	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"

	"github.com/google/uuid"
)

// ResourceResponse is the flat projection every resource query returns: the
// resource row joined with the donor's and, when claimed, the receiver's
// display name.
type ResourceResponse struct {
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

// resourceColumns is the projection every resource query selects, in the
// order scanResourceRow expects. The donor join is inner (every resource has
// a donor), the receiver join is left (unclaimed resources have none).
const resourceColumns = `
	r.id,
	r.title,
	r.description,
	r.category,
	r.status,
	r.auto_confirm,
	r.latitude,
	r.longitude,
	r.address,
	r.image_url,
	r.donor_id,
	d.name,
	r.receiver_id,
	rcv.name,
	r.created_at,
	r.claimed_at,
	r.delivered_at
`

// resourceJoins attaches the donor and receiver name sources to the
// resources table.
const resourceJoins = `
	FROM resources r
	JOIN users d ON d.id = r.donor_id
	LEFT JOIN users rcv ON rcv.id = r.receiver_id
`

// scanResourceRow scans one row of the resourceColumns projection.
func scanResourceRow(rows *sql.Rows) (ResourceResponse, error) {
	var (
		response     ResourceResponse
		id           uuid.UUID
		category     int
		status       int
		donorID      uuid.UUID
		receiverID   uuid.NullUUID
		receiverName sql.NullString
		claimedAt    sql.NullTime
		deliveredAt  sql.NullTime
	)

	err := rows.Scan(
		&id,
		&response.Title,
		&response.Description,
		&category,
		&status,
		&response.AutoConfirm,
		&response.Latitude,
		&response.Longitude,
		&response.Address,
		&response.ImageURL,
		&donorID,
		&response.DonorName,
		&receiverID,
		&receiverName,
		&response.CreatedAt,
		&claimedAt,
		&deliveredAt,
	)
	if err != nil {
		return ResourceResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ResourceResponse{}, err
	}

	response.DonorID, err = kernel.UUIDFromBytes(donorID[:])
	if err != nil {
		return ResourceResponse{}, err
	}

	if receiverID.Valid {
		restored, idErr := kernel.UUIDFromBytes(receiverID.UUID[:])
		if idErr != nil {
			return ResourceResponse{}, idErr
		}
		response.ReceiverID = &restored
	}
	if receiverName.Valid {
		response.ReceiverName = receiverName.String
	}

	response.Category = resource.Category(category)
	response.Status = resource.Status(status)

	if claimedAt.Valid {
		t := claimedAt.Time
		response.ClaimedAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		response.DeliveredAt = &t
	}

	return response, nil
}

// scanResourceRows drains a result set of the resourceColumns projection.
func scanResourceRows(rows *sql.Rows) ([]ResourceResponse, error) {
	responses := make([]ResourceResponse, 0)

	for rows.Next() {
		response, err := scanResourceRow(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
