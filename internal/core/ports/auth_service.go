package ports

import (
	"context"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// RegisterInput carries the data for a new account. Role is a request only;
// the service is authoritative and defaults unknown values to user.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token string
	User  *domain.Identity
}

// AuthService covers credential exchange and identity resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Identity resolves a user id (taken from validated token claims) to the
	// current identity.
	Identity(ctx context.Context, userID string) (*domain.Identity, error)
	// Revoke invalidates the allow-list entry for a token id. Idempotent.
	Revoke(ctx context.Context, tokenID string) error
}
