package ports

import (
	"context"
	"time"
)

// TokenStore is the allow-list of issued session tokens. Entries expire with
// the token itself; revoking an entry invalidates the token immediately even
// though its signature remains valid.
type TokenStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	IsLive(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
