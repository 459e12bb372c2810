package http

import (
	"time"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PublishResourceRequest is the body of POST /api/resources.
type PublishResourceRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	ImageURL    string  `json:"imageUrl"`
}

// ResourceView is the JSON shape of a resource in every response. Category
// and status are rendered as their string names; receiver fields are omitted
// until the resource is claimed.
type ResourceView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	AutoConfirm  bool       `json:"autoConfirm"`
	DonorID      string     `json:"donorId"`
	DonorName    string     `json:"donorName"`
	ReceiverID   *string    `json:"receiverId,omitempty"`
	ReceiverName string     `json:"receiverName,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Address      string     `json:"address,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ClaimedAt    *time.Time `json:"claimedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}

// viewFromResult maps a command projection to the response shape.
func viewFromResult(result commands.ResourceResult) ResourceView {
	view := ResourceView{
		ID:           result.ID.String(),
		Title:        result.Title,
		Description:  result.Description,
		Category:     result.Category.String(),
		Status:       result.Status.String(),
		AutoConfirm:  result.AutoConfirm,
		DonorID:      result.DonorID.String(),
		DonorName:    result.DonorName,
		ReceiverName: result.ReceiverName,
		Latitude:     result.Latitude,
		Longitude:    result.Longitude,
		Address:      result.Address,
		ImageURL:     result.ImageURL,
		CreatedAt:    result.CreatedAt,
		ClaimedAt:    result.ClaimedAt,
		DeliveredAt:  result.DeliveredAt,
	}

	if result.ReceiverID != nil {
		id := result.ReceiverID.String()
		view.ReceiverID = &id
	}

	return view
}

// viewFromResponse maps a query projection to the response shape.
func viewFromResponse(response queries.ResourceResponse) ResourceView {
	view := ResourceView{
		ID:           response.ID.String(),
		Title:        response.Title,
		Description:  response.Description,
		Category:     response.Category.String(),
		Status:       response.Status.String(),
		AutoConfirm:  response.AutoConfirm,
		DonorID:      response.DonorID.String(),
		DonorName:    response.DonorName,
		ReceiverName: response.ReceiverName,
		Latitude:     response.Latitude,
		Longitude:    response.Longitude,
		Address:      response.Address,
		ImageURL:     response.ImageURL,
		CreatedAt:    response.CreatedAt,
		ClaimedAt:    response.ClaimedAt,
		DeliveredAt:  response.DeliveredAt,
	}

	if response.ReceiverID != nil {
		id := response.ReceiverID.String()
		view.ReceiverID = &id
	}

	return view
}

// viewsFromResponses maps a query result set to the response shape.
func viewsFromResponses(responses []queries.ResourceResponse) []ResourceView {
	views := make([]ResourceView, len(responses))
	for i, response := range responses {
		views[i] = viewFromResponse(response)
	}
	return views
}
