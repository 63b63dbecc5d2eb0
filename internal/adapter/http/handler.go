// Package http provides the HTTP handler layer for the offer search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/travel-offers/offer-search-engine/internal/adapter/http/response"
	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/store"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

// OfferHandler handles HTTP requests for offer-related endpoints.
type OfferHandler struct {
	search     usecase.OfferSearchUseCase
	favourites *store.Favourites
}

// NewOfferHandler creates a new OfferHandler with the given use case and
// favourites service.
func NewOfferHandler(search usecase.OfferSearchUseCase, favourites *store.Favourites) *OfferHandler {
	return &OfferHandler{
		search:     search,
		favourites: favourites,
	}
}

// SearchFlightOffers handles POST /api/v1/flights/search
//
// Generates the deterministic flight offer set for the requested route and
// dates, applies sort/filter/pagination, and returns the reconciled page.
func (h *OfferHandler) SearchFlightOffers(c echo.Context) error {
	var req SearchFlightOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	filter := ToFlightSearchFilter(&req)
	opts := ToFlightSearchOptions(&req)

	result, err := h.search.SearchFlightOffers(c.Request().Context(), filter, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToFlightSearchResponseDTO(result))
}

// SearchStayOffers handles POST /api/v1/stays/search
func (h *OfferHandler) SearchStayOffers(c echo.Context) error {
	var req SearchStayOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	filter := ToStaySearchFilter(&req)
	opts := ToStaySearchOptions(&req)

	result, err := h.search.SearchStayOffers(c.Request().Context(), filter, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToStaySearchResponseDTO(result))
}

// ToggleFavourite handles POST /api/v1/offers/:kind/:id/favourite
//
// Flips the per-user favourite flag of a persisted offer and returns the new
// state. Concurrent toggles are resolved with optimistic retries; a response
// always reflects a write that actually happened.
func (h *OfferHandler) ToggleFavourite(c echo.Context) error {
	var req ToggleFavouriteRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	offerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.ValidationErrorWithMessage(c, "offer id must be a positive integer")
	}

	kind := store.OfferKind(c.Param("kind"))

	isFavourite, err := h.favourites.Toggle(c.Request().Context(), req.UserID, kind, uint(offerID))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &ToggleFavouriteResponseDTO{
		OfferID:     uint(offerID),
		Kind:        string(kind),
		IsFavourite: isFavourite,
	})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	// Reference data the generator depends on is missing or unreachable
	if errors.Is(err, domain.ErrRequiredDataMissing) {
		return response.ServiceUnavailableWithMessage(c, err.Error())
	}

	// Optimistic retry budget exhausted under contention
	if errors.Is(err, domain.ErrVersionConflict) {
		return response.Conflict(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
