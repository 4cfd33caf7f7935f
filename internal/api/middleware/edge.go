package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/metrics"
	"github.com/superfood-sragen/storefront-system/internal/guard"
)

// EdgeGuard redirects requests for retired page areas before routing. The
// client-side guard blocks these paths too; this is the redundant server-side
// edge of the same rule, so no identity may ever reach the retired area.
// Register with e.Pre.
func EdgeGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api/") {
				return next(c)
			}
			if class := guard.Classify(path); class == guard.RouteForbidden {
				metrics.GuardRedirectsTotal.WithLabelValues(class.String()).Inc()
				return c.Redirect(http.StatusTemporaryRedirect, guard.PathAdminDashboard)
			}
			return next(c)
		}
	}
}
