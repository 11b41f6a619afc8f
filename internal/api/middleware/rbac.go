package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// Context keys set by RequireRole.
const (
	UserKey = "user"
	RoleKey = "role"
)

// RoleGuard checks the signed-in user against a dashboard role.
type RoleGuard interface {
	Guard(ctx context.Context, role domain.Role) (*domain.User, error)
}

// RequireRole runs the page guard for role before every request and puts the
// user on the context. Guard errors (sign-in required, redirect to another
// dashboard) go to the HTTP error handler unchanged.
func RequireRole(guard RoleGuard, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := guard.Guard(c.Request().Context(), role)
			if err != nil {
				return err
			}
			c.Set(UserKey, user)
			c.Set(RoleKey, string(user.Role))
			return next(c)
		}
	}
}
