package ports

import (
	"context"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// StoreProfileInput carries the writable fields of the store profile.
type StoreProfileInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
	Owner       string
	Logo        string
}

// StoreProfileRepository persists the single store profile record.
type StoreProfileRepository interface {
	Get(ctx context.Context) (*domain.StoreProfile, error)
	Upsert(ctx context.Context, p *domain.StoreProfile) (*domain.StoreProfile, error)
}

// StoreProfileService covers reading and updating the store profile.
type StoreProfileService interface {
	Get(ctx context.Context) (*domain.StoreProfile, error)
	Update(ctx context.Context, in StoreProfileInput) (*domain.StoreProfile, error)
}
