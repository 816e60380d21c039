package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the validation taxonomy to its HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers return errors as-is; this is the single place where status codes
// are chosen.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		switch ve.Kind {
		case domain.KindMissingField, domain.KindInvalidField:
			return http.StatusBadRequest, ve.Error()
		case domain.KindDuplicateField:
			return http.StatusConflict, ve.Error()
		case domain.KindUnauthorized:
			return http.StatusUnauthorized, ve.Error()
		case domain.KindNotFound:
			return http.StatusNotFound, ve.Error()
		case domain.KindWrongValue:
			return http.StatusUnauthorized, ve.Error()
		}
	}

	if errors.Is(err, domain.ErrTooManyAttempts) {
		return http.StatusTooManyRequests, "too many attempts, try again later"
	}

	// Anything else, store failures included, is internal. Log the real
	// cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
