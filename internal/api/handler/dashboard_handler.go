package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/response"
	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the admin-console tallies. Account counts are included only
// for admins; sub-admins get the catalog numbers without them.
//
// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), role == domain.RoleAdmin)
	if err != nil {
		return err
	}
	return response.OK(c, stats)
}
