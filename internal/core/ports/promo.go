package ports

import (
	"context"
	"time"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// PromoInput carries the writable fields of a promotion.
type PromoInput struct {
	Name         string
	Description  string
	Discount     float64
	DiscountType string
	MinPurchase  int64
	MaxDiscount  int64
	Code         string
	StartDate    *time.Time
	EndDate      *time.Time
	IsActive     *bool
	Image        string
}

// PromoRepository persists promotion campaigns.
type PromoRepository interface {
	Create(ctx context.Context, p *domain.Promo) (*domain.Promo, error)
	FindByID(ctx context.Context, id string) (*domain.Promo, error)
	List(ctx context.Context) ([]*domain.Promo, error)
	Update(ctx context.Context, p *domain.Promo) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// DeactivateExpired flips is_active off for promos whose end date is
	// before now, returning how many were changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// PromoService covers promotion reads and administration.
type PromoService interface {
	Create(ctx context.Context, in PromoInput) (*domain.Promo, error)
	Get(ctx context.Context, id string) (*domain.Promo, error)
	List(ctx context.Context) ([]*domain.Promo, error)
	Update(ctx context.Context, id string, in PromoInput) (*domain.Promo, error)
	Delete(ctx context.Context, id string) error
	DeactivateExpired(ctx context.Context) (int64, error)
}
