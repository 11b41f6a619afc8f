package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenSource reports whether a session token is held.
type TokenSource interface {
	Token() (string, bool)
}

// RequireSession rejects requests with 401 while no session token is held.
func RequireSession(tokens TokenSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := tokens.Token(); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
			}
			return next(c)
		}
	}
}
