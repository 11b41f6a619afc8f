package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const headerSecFetchSite = "Sec-Fetch-Site"

// RequireTrustedOrigin rejects state-changing requests sent by a browser page
// from another site. A request passes when its Origin is the server itself or
// one of allowed. Requests without Origin pass unless Sec-Fetch-Site marks
// them cross-site; command line clients send neither header.
func RequireTrustedOrigin(allowed []string) echo.MiddlewareFunc {
	trusted := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o = normalizeOrigin(o); o != "" {
			trusted[o] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" {
				if req.Header.Get(headerSecFetchSite) == "cross-site" {
					return echo.NewHTTPError(http.StatusForbidden, "cross-origin request rejected")
				}
				return next(c)
			}

			origin = normalizeOrigin(origin)
			if _, ok := trusted[origin]; ok || sameHost(origin, req.Host) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden, "cross-origin request rejected")
		}
	}
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}

// sameHost reports whether origin names host. The opaque "null" origin never
// matches.
func sameHost(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
