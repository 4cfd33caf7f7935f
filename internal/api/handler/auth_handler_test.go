package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/api/middleware"
	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	identityFn func(ctx context.Context, userID string) (*domain.Identity, error)
	revokeFn   func(ctx context.Context, tokenID string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Identity(ctx context.Context, userID string) (*domain.Identity, error) {
	return s.identityFn(ctx, userID)
}

func (s *stubAuthService) Revoke(ctx context.Context, tokenID string) error {
	return s.revokeFn(ctx, tokenID)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Email != "alice@example.com" || in.DisplayName != "Alice" {
				t.Errorf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "tok-1",
				User:  &domain.Identity{ID: "u1", Email: in.Email, DisplayName: in.DisplayName, Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret1","displayName":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string           `json:"token"`
			User  *domain.Identity `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Data.Token != "tok-1" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
	if resp.Data.User == nil || resp.Data.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", resp.Data.User)
	}
}

func TestAuthHandler_Register_ServiceErrorPropagates(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","password":"secret1"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
			t.Errorf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || len(resp.Errors) == 0 {
		t.Fatalf("expected validation errors in envelope: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Errorf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{
				Token: "tok-2",
				User:  &domain.Identity{ID: "u1", Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok-2"`) {
		t.Fatalf("token missing from envelope: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		identityFn: func(_ context.Context, userID string) (*domain.Identity, error) {
			if userID != "u1" {
				t.Errorf("user id = %q", userID)
			}
			return &domain.Identity{ID: "u1", Email: "alice@example.com", Role: domain.RoleSubAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.CtxUserID, "u1")
	c.Set(middleware.CtxRole, domain.RoleSubAdmin)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"role":"sub_admin"`) {
		t.Fatalf("role missing from envelope: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked string
	stub := &stubAuthService{
		revokeFn: func(_ context.Context, tokenID string) error {
			revoked = tokenID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.CtxTokenID, "jti-1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "jti-1" {
		t.Fatalf("revoked token id = %q, want jti-1", revoked)
	}
}
