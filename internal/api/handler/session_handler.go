package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
)

// SessionHandler serves sign-up, sign-in and the signed-in user's profile.
type SessionHandler struct {
	session ports.SessionController
}

func NewSessionHandler(session ports.SessionController) *SessionHandler {
	return &SessionHandler{session: session}
}

// Register handles POST /session/register. The new account is signed in and
// the response names its dashboard.
func (h *SessionHandler) Register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	result, err := h.session.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{User: &result.User, Redirect: result.User.Role.Home()})
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	result, err := h.session.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{User: &result.User, Redirect: result.User.Role.Home()})
}

// Logout handles POST /session/logout. It always succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /session/me.
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := h.session.Profile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user, Redirect: user.Role.Home()})
}

// Claims handles GET /session/claims.
func (h *SessionHandler) Claims(c echo.Context) error {
	claims, err := h.session.Claims()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// ToggleSimplifiedMode handles POST /session/simplified-mode.
func (h *SessionHandler) ToggleSimplifiedMode(c echo.Context) error {
	user, err := h.session.ToggleSimplifiedMode(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}
