package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the Redis-backed allow-list of issued session tokens.
// Key format: session:<token_id>, value is the owning user id. Entries carry
// the token's own TTL, so the allow-list and the signature expire together;
// deleting an entry revokes the token early.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("token save: %w", err)
	}
	return nil
}

// IsLive reports whether the token has been issued and not yet revoked.
func (s *TokenStore) IsLive(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("token check: %w", err)
	}
	return n > 0, nil
}

// Revoke deletes the allow-list entry. Revoking an unknown token is a no-op.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, s.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("token revoke: %w", err)
	}
	return nil
}

func (s *TokenStore) key(tokenID string) string {
	return "session:" + tokenID
}
