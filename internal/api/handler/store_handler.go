package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/response"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type StoreHandler struct {
	service ports.StoreProfileService
}

func NewStoreHandler(service ports.StoreProfileService) *StoreHandler {
	return &StoreHandler{service: service}
}

type storeProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Owner       string `json:"owner"`
	Logo        string `json:"logo"`
}

// Get returns the store profile.
//
// @Summary      Store profile
// @Tags         store
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /store-profile [get]
func (h *StoreHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, profile)
}

// Update upserts the store profile. It serves both PUT and POST: clients that
// have never saved a profile create it with POST, later edits arrive as PUT.
//
// @Summary      Update store profile
// @Tags         store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      storeProfileRequest  true  "Store profile"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /store-profile [put]
// @Router       /store-profile [post]
func (h *StoreHandler) Update(c echo.Context) error {
	var req storeProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, []string{err.Error()})
	}

	profile, err := h.service.Update(c.Request().Context(), ports.StoreProfileInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Owner:       req.Owner,
		Logo:        req.Logo,
	})
	if err != nil {
		return err
	}
	return response.OK(c, profile)
}
