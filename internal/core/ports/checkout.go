package ports

import (
	"context"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// CheckoutInput carries a checkout request. Quantity must be at least one;
// pricing comes from the stored product, never from the caller.
type CheckoutInput struct {
	ProductID     string
	Quantity      int
	CustomerName  string
	CustomerPhone string
	Notes         string
	RequestedBy   string
}

// CheckoutResult is the order summary plus the pre-filled messaging link.
type CheckoutResult struct {
	OrderNumber string           `json:"orderNumber"`
	WhatsAppURL string           `json:"whatsappUrl"`
	Product     *domain.Product  `json:"product"`
	Quantity    int              `json:"quantity"`
	Total       int64            `json:"total"`
	Customer    domain.Customer  `json:"customer"`
}

// OrderRepository persists checkout receipts.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
}

// CheckoutService turns a product + quantity + customer into an order summary
// and a messaging-app deep link.
type CheckoutService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}
