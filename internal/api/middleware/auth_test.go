package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/pkg/token"
)

const testSecret = "test-secret"

type stubTokenStore struct {
	live map[string]bool
	err  error
}

func (s *stubTokenStore) Save(_ context.Context, tokenID, _ string, _ time.Duration) error {
	s.live[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsLive(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.live[tokenID], nil
}

func (s *stubTokenStore) Revoke(_ context.Context, tokenID string) error {
	delete(s.live, tokenID)
	return nil
}

func runAuth(t *testing.T, store *stubTokenStore, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, store)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func signedToken(t *testing.T, role domain.Role, tokenID string) string {
	t.Helper()
	signed, err := token.Generate("u1", "a@example.com", role, tokenID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return signed
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	store := &stubTokenStore{live: map[string]bool{"jti-1": true}}
	signed := signedToken(t, domain.RoleAdmin, "jti-1")

	c, err := runAuth(t, store, "Bearer "+signed)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if got, _ := c.Get(CtxUserID).(string); got != "u1" {
		t.Errorf("user id = %q", got)
	}
	if got, _ := c.Get(CtxRole).(domain.Role); got != domain.RoleAdmin {
		t.Errorf("role = %q", got)
	}
	if got, _ := c.Get(CtxTokenID).(string); got != "jti-1" {
		t.Errorf("token id = %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	store := &stubTokenStore{live: map[string]bool{}}

	_, err := runAuth(t, store, "")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	store := &stubTokenStore{live: map[string]bool{}}

	_, err := runAuth(t, store, "Basic abc123")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	store := &stubTokenStore{live: map[string]bool{}}
	signed, err := token.Generate("u1", "a@example.com", domain.RoleUser, "jti-1", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = runAuth(t, store, "Bearer "+signed)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	// Valid signature but no allow-list entry: the logout path.
	store := &stubTokenStore{live: map[string]bool{}}
	signed := signedToken(t, domain.RoleUser, "jti-gone")

	_, err := runAuth(t, store, "Bearer "+signed)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestAuth_AllowListUnavailable(t *testing.T) {
	store := &stubTokenStore{live: map[string]bool{}, err: errors.New("redis down")}
	signed := signedToken(t, domain.RoleUser, "jti-1")

	_, err := runAuth(t, store, "Bearer "+signed)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the allow-list is unreachable, got %v", err)
	}
}
