package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/middleware"
	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a present user id proves the middleware
// ran, and the role is folded onto the closed enumeration.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}
	return userID, role, nil
}
