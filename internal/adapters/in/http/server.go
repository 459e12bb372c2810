// Package http exposes the resource lifecycle over REST. Handlers translate
// requests into commands and queries, and map the core error taxonomy onto
// status codes: unknown object 404, failed ownership or role check 403,
// illegal transition 409, invalid input 400.
package http

import (
	"errors"
	"net/http"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/application/usecases/queries"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	publishHandler           commands.PublishResourceCommandHandler
	claimHandler             commands.ClaimResourceCommandHandler
	confirmPickupHandler     commands.ConfirmPickupCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	toggleAutoConfirmHandler commands.ToggleAutoConfirmCommandHandler
	cancelHandler            commands.CancelResourceCommandHandler

	// Query handlers
	availableHandler         queries.GetAvailableResourcesQueryHandler
	donorResourcesHandler    queries.GetDonorResourcesQueryHandler
	claimedDonorHandler      queries.GetClaimedDonorResourcesQueryHandler
	receiverResourcesHandler queries.GetReceiverResourcesQueryHandler
	resourceByIDHandler      queries.GetResourceByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	publishHandler commands.PublishResourceCommandHandler,
	claimHandler commands.ClaimResourceCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	toggleAutoConfirmHandler commands.ToggleAutoConfirmCommandHandler,
	cancelHandler commands.CancelResourceCommandHandler,
	availableHandler queries.GetAvailableResourcesQueryHandler,
	donorResourcesHandler queries.GetDonorResourcesQueryHandler,
	claimedDonorHandler queries.GetClaimedDonorResourcesQueryHandler,
	receiverResourcesHandler queries.GetReceiverResourcesQueryHandler,
	resourceByIDHandler queries.GetResourceByIDQueryHandler,
) *Server {
	return &Server{
		publishHandler:           publishHandler,
		claimHandler:             claimHandler,
		confirmPickupHandler:     confirmPickupHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		toggleAutoConfirmHandler: toggleAutoConfirmHandler,
		cancelHandler:            cancelHandler,
		availableHandler:         availableHandler,
		donorResourcesHandler:    donorResourcesHandler,
		claimedDonorHandler:      claimedDonorHandler,
		receiverResourcesHandler: receiverResourcesHandler,
		resourceByIDHandler:      resourceByIDHandler,
	}
}

// RegisterRoutes mounts all resource routes behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, provider ports.IdentityProvider) {
	api := e.Group("/api/resources", AuthMiddleware(provider))

	api.POST("", s.PublishResource)
	api.GET("/available", s.GetAvailableResources)
	api.GET("/my-donations", s.GetMyDonations)
	api.GET("/donor/claimed", s.GetClaimedDonations)
	api.GET("/my-received", s.GetMyReceived)
	api.GET("/:id", s.GetResourceByID)
	api.POST("/:id/claim", s.ClaimResource)
	api.POST("/:id/confirm-pickup", s.ConfirmPickup)
	api.POST("/:id/toggle-auto-confirm", s.ToggleAutoConfirm)
	api.POST("/:id/deliver", s.ConfirmDelivery)
	api.POST("/:id/cancel", s.CancelResource)
}

// PublishResource handles POST /api/resources - publishes a new resource.
func (s *Server) PublishResource(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return writeError(c, errs.NewNotAuthorizedError("publish resource"))
	}

	var request PublishResourceRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	category, err := resource.CategoryFromString(request.Category)
	if err != nil {
		return writeError(c, err)
	}

	location, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewPublishResourceCommand(
		kernel.NewUUID(), identity, request.Title, request.Description,
		category, location, request.Address, request.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.publishHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, viewFromResult(result))
}

// GetAvailableResources handles GET /api/resources/available.
func (s *Server) GetAvailableResources(c echo.Context) error {
	responses, err := s.availableHandler.Handle(
		c.Request().Context(), queries.NewGetAvailableResourcesQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewsFromResponses(responses))
}

// GetMyDonations handles GET /api/resources/my-donations - the caller's
// published resources in every status.
func (s *Server) GetMyDonations(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return writeError(c, errs.NewNotAuthorizedError("list donations"))
	}

	query, err := queries.NewGetDonorResourcesQuery(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	responses, err := s.donorResourcesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewsFromResponses(responses))
}

// GetClaimedDonations handles GET /api/resources/donor/claimed - the caller's
// resources awaiting pickup confirmation.
func (s *Server) GetClaimedDonations(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return writeError(c, errs.NewNotAuthorizedError("list claimed donations"))
	}

	query, err := queries.NewGetClaimedDonorResourcesQuery(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	responses, err := s.claimedDonorHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewsFromResponses(responses))
}

// GetMyReceived handles GET /api/resources/my-received - the resources the
// caller has claimed.
func (s *Server) GetMyReceived(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return writeError(c, errs.NewNotAuthorizedError("list received resources"))
	}

	query, err := queries.NewGetReceiverResourcesQuery(identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	responses, err := s.receiverResourcesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewsFromResponses(responses))
}

// GetResourceByID handles GET /api/resources/:id.
func (s *Server) GetResourceByID(c echo.Context) error {
	resourceID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("resourceID", err))
	}

	query, err := queries.NewGetResourceByIDQuery(resourceID)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.resourceByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewFromResponse(response))
}

// ClaimResource handles POST /api/resources/:id/claim.
func (s *Server) ClaimResource(c echo.Context) error {
	return s.handleTransition(c, "claim resource",
		func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error) {
			cmd, err := commands.NewClaimResourceCommand(resourceID, identity)
			if err != nil {
				return commands.ResourceResult{}, err
			}
			return s.claimHandler.Handle(c.Request().Context(), cmd)
		})
}

// ConfirmPickup handles POST /api/resources/:id/confirm-pickup.
func (s *Server) ConfirmPickup(c echo.Context) error {
	return s.handleTransition(c, "confirm pickup",
		func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error) {
			cmd, err := commands.NewConfirmPickupCommand(resourceID, identity)
			if err != nil {
				return commands.ResourceResult{}, err
			}
			return s.confirmPickupHandler.Handle(c.Request().Context(), cmd)
		})
}

// ConfirmDelivery handles POST /api/resources/:id/deliver.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	return s.handleTransition(c, "confirm delivery",
		func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error) {
			cmd, err := commands.NewConfirmDeliveryCommand(resourceID, identity)
			if err != nil {
				return commands.ResourceResult{}, err
			}
			return s.confirmDeliveryHandler.Handle(c.Request().Context(), cmd)
		})
}

// ToggleAutoConfirm handles POST /api/resources/:id/toggle-auto-confirm.
func (s *Server) ToggleAutoConfirm(c echo.Context) error {
	return s.handleTransition(c, "toggle auto-confirm",
		func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error) {
			cmd, err := commands.NewToggleAutoConfirmCommand(resourceID, identity)
			if err != nil {
				return commands.ResourceResult{}, err
			}
			return s.toggleAutoConfirmHandler.Handle(c.Request().Context(), cmd)
		})
}

// CancelResource handles POST /api/resources/:id/cancel.
func (s *Server) CancelResource(c echo.Context) error {
	return s.handleTransition(c, "cancel resource",
		func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error) {
			cmd, err := commands.NewCancelResourceCommand(resourceID, identity)
			if err != nil {
				return commands.ResourceResult{}, err
			}
			return s.cancelHandler.Handle(c.Request().Context(), cmd)
		})
}

// handleTransition is the shared shape of the five lifecycle POSTs: parse the
// resource ID, run the command with the caller's identity, return the updated
// resource.
func (s *Server) handleTransition(
	c echo.Context,
	operation string,
	run func(resourceID kernel.UUID, identity ports.Identity) (commands.ResourceResult, error),
) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return writeError(c, errs.NewNotAuthorizedError(operation))
	}

	resourceID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("resourceID", err))
	}

	result, err := run(resourceID, identity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, viewFromResult(result))
}

// writeError maps the core error taxonomy onto HTTP status codes. The error
// message is passed through: state conflicts carry the status observed at
// decision time, authorization failures stay generic.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := "Internal server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
