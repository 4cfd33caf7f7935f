package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/metrics"
	"github.com/superfood-sragen/storefront-system/internal/api/response"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type checkoutRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	Notes         string `json:"notes"`
}

// Checkout builds an order receipt and a wa.me deep link for it. The order is
// tied to the calling account.
//
// @Summary      Checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Order details"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	requestedBy, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, []string{err.Error()})
	}

	result, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		RequestedBy:   requestedBy,
	})
	if err != nil {
		return err
	}

	metrics.CheckoutLinks.Inc()
	return response.OK(c, result)
}
