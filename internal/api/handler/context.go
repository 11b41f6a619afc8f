package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/api/middleware"
	"github.com/studycare/studycare-client/internal/core/domain"
)

// maxUploadBytes caps a single image or audio part.
const maxUploadBytes = 25 << 20

// ctxUser returns the user the role guard put on the context. Reaching a
// dashboard handler without one means the route was registered without its
// guard, which is reported as 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session user")
	}
	return user, nil
}

// bindValid binds the request body into req and runs the registered validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// formFile opens the multipart part named field. The caller closes the reader.
func formFile(c echo.Context, field string) (string, io.ReadCloser, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, field+" file is required")
	}
	if fh.Size > maxUploadBytes {
		return "", nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" file is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field+" file")
	}
	return fh.Filename, f, nil
}
