package ports

import (
	"context"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// UserUpdateInput carries the fields an administrator may change on an
// account. A nil field is left untouched.
type UserUpdateInput struct {
	DisplayName *string
	Role        *string
	Phone       *string
}

// UserService covers account administration.
type UserService interface {
	List(ctx context.Context) ([]*domain.Identity, error)
	Update(ctx context.Context, id string, in UserUpdateInput) (*domain.Identity, error)
	Delete(ctx context.Context, id string) error
}
