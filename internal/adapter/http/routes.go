// Package http provides the HTTP handler layer for the offer search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all offer search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *OfferHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlightOffers)

	// Stays group
	stays := api.Group("/stays")
	stays.POST("/search", h.SearchStayOffers)

	// Offers group
	offers := api.Group("/offers")
	offers.POST("/:kind/:id/favourite", h.ToggleFavourite)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *OfferHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlightOffers)

	stays := api.Group("/stays")
	stays.POST("/search", h.SearchStayOffers)

	offers := api.Group("/offers")
	offers.POST("/:kind/:id/favourite", h.ToggleFavourite)
}
