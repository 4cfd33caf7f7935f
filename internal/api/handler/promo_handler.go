package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/response"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type PromoHandler struct {
	service ports.PromoService
}

func NewPromoHandler(service ports.PromoService) *PromoHandler {
	return &PromoHandler{service: service}
}

type promoRequest struct {
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description"`
	Discount     float64    `json:"discount" validate:"required,gt=0"`
	DiscountType string     `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	MinPurchase  int64      `json:"minPurchase" validate:"omitempty,gte=0"`
	MaxDiscount  int64      `json:"maxDiscount" validate:"omitempty,gte=0"`
	Code         string     `json:"code"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsActive     *bool      `json:"isActive"`
	Image        string     `json:"image"`
}

func (r promoRequest) input() ports.PromoInput {
	return ports.PromoInput{
		Name:         r.Name,
		Description:  r.Description,
		Discount:     r.Discount,
		DiscountType: r.DiscountType,
		MinPurchase:  r.MinPurchase,
		MaxDiscount:  r.MaxDiscount,
		Code:         r.Code,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		IsActive:     r.IsActive,
		Image:        r.Image,
	}
}

// List returns all promotions.
//
// @Summary      List promos
// @Tags         promos
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /promos [get]
func (h *PromoHandler) List(c echo.Context) error {
	promos, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, promos)
}

// Get returns one promo by id.
//
// @Summary      Get a promo
// @Tags         promos
// @Produce      json
// @Param        id   path      string  true  "Promo id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /promos/{id} [get]
func (h *PromoHandler) Get(c echo.Context) error {
	promo, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, promo)
}

// Create adds a promotion.
//
// @Summary      Create a promo
// @Tags         promos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      promoRequest  true  "Promo details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /promos [post]
func (h *PromoHandler) Create(c echo.Context) error {
	var req promoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, []string{err.Error()})
	}

	promo, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return response.Created(c, promo)
}

// Update replaces the writable fields of a promo.
//
// @Summary      Update a promo
// @Tags         promos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Promo id"
// @Param        body  body      promoRequest  true  "Promo details"
// @Success      200   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /promos/{id} [put]
func (h *PromoHandler) Update(c echo.Context) error {
	var req promoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, []string{err.Error()})
	}

	promo, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return response.OK(c, promo)
}

// Delete removes a promo.
//
// @Summary      Delete a promo
// @Tags         promos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Promo id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /promos/{id} [delete]
func (h *PromoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return response.OKMessage(c, "promo deleted")
}
