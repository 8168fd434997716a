package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// errorEnvelope is the standard failure envelope: {"success":false,"error":"..."}.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// routeNotFoundResponse is the payload for requests that matched no route.
type routeNotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// internalErrorResponse is the payload for unhandled errors. Message carries
// the real cause only outside production.
type internalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders router 404s as {"error":"Route not found","path":...}.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors and returns a generic payload, with the real
//     message disclosed only in development.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors: the router's 404/405 plus anything a handler
		// raised as *echo.HTTPError.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
				_ = c.JSON(http.StatusNotFound, routeNotFoundResponse{
					Error: "Route not found",
					Path:  c.Request().URL.Path,
				})
				return
			}
			_ = c.JSON(he.Code, errorEnvelope{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		// Known domain errors, in case a handler lets one through.
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			_ = c.JSON(http.StatusBadRequest, errorEnvelope{Error: ve.Message})
			return
		case errors.Is(err, domain.ErrUserNotFound):
			_ = c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
			return
		case errors.Is(err, domain.ErrProductNotFound):
			_ = c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		msg := "Internal server error"
		if env == "development" {
			msg = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, internalErrorResponse{
			Error:   "Something went wrong!",
			Message: msg,
		})
	}
}
