package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travel-offers/offer-search-engine/internal/adapter/http/response"
)

// RecoveryConfig controls how panics are reported.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry.
	DisablePrintStack bool
}

// Recover returns middleware that catches panics in the handler chain, logs
// them with a stack trace and returns a 500 without killing the server.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, RecoveryConfig{})
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg)
					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}
					event.Msg("Panic recovered")

					// Generic body only; panic details stay in the log
					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, &response.ErrorDetail{
							Code:    response.CodeInternalError,
							Message: response.MsgInternalError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
