package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware stack on the Echo instance. The order
// matters: RequestID runs first so every log line carries the ID, then the
// request logger, then recovery wrapping the handlers.
//
// Call this before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
