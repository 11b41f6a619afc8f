package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// errorResponse is the error envelope for every dashboard API failure.
// Redirect is set when the signed-in user belongs on another dashboard.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps controller
// errors to status codes and renders {"error": "<message>"}. Backend failures
// keep their message; unexpected errors are logged and hidden.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var redirect *domain.RedirectError
	if errors.As(err, &redirect) {
		return http.StatusForbidden, errorResponse{Error: redirect.Error(), Redirect: redirect.Route}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNoSelection):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	}

	// Backend failures pass their status through; transport failures (status
	// 0) and odd 1xx-3xx statuses surface as a bad gateway.
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Status
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		return code, errorResponse{Error: apiErr.Message}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
