package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/metrics"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
	"github.com/superfood-sragen/storefront-system/internal/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxRole    = "role"
	CtxTokenID = "token_id"
)

// Auth validates the bearer token and injects its claims into the request
// context. A token must both carry a valid signature and still be present in
// the allow-list; logout removes the allow-list entry, so revoked tokens fail
// here even before their signature expires.
func Auth(jwtSecret string, tokens ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := token.Parse(parts[1], jwtSecret)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			live, err := tokens.IsLive(c.Request().Context(), claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session check unavailable")
			}
			if !live {
				metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked or expired")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxTokenID, claims.ID)

			return next(c)
		}
	}
}
