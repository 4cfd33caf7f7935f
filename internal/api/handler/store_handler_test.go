package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

type stubStoreService struct {
	getFn    func(ctx context.Context) (*domain.StoreProfile, error)
	updateFn func(ctx context.Context, in ports.StoreProfileInput) (*domain.StoreProfile, error)
}

func (s *stubStoreService) Get(ctx context.Context) (*domain.StoreProfile, error) {
	return s.getFn(ctx)
}

func (s *stubStoreService) Update(ctx context.Context, in ports.StoreProfileInput) (*domain.StoreProfile, error) {
	return s.updateFn(ctx, in)
}

func TestStoreHandler_Get(t *testing.T) {
	stub := &stubStoreService{
		getFn: func(_ context.Context) (*domain.StoreProfile, error) {
			return &domain.StoreProfile{ID: "profile", Name: "Superfood Sragen", UpdatedAt: time.Now()}, nil
		},
	}
	h := NewStoreHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/api/store-profile", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Superfood Sragen"`) {
		t.Fatalf("profile missing from envelope: %s", rec.Body.String())
	}
}

func TestStoreHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubStoreService{
		getFn: func(_ context.Context) (*domain.StoreProfile, error) {
			return nil, domain.ErrProfileNotFound
		},
	}
	h := NewStoreHandler(stub)

	c, _ := newAuthContext(t, http.MethodGet, "/api/store-profile", "")

	if err := h.Get(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound to propagate, got %v", err)
	}
}

func TestStoreHandler_Update_ValidationFailure(t *testing.T) {
	stub := &stubStoreService{
		updateFn: func(_ context.Context, _ ports.StoreProfileInput) (*domain.StoreProfile, error) {
			t.Errorf("service should not be called")
			return nil, nil
		},
	}
	h := NewStoreHandler(stub)

	c, rec := newAuthContext(t, http.MethodPut, "/api/store-profile",
		`{"name":"","email":"not-an-email"}`)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// The admin console creates the profile with POST on first save and edits it
// with PUT afterwards; both methods must reach the same upsert.
func TestStoreHandler_Update_UpsertServesPostAndPut(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut} {
		var got ports.StoreProfileInput
		stub := &stubStoreService{
			updateFn: func(_ context.Context, in ports.StoreProfileInput) (*domain.StoreProfile, error) {
				got = in
				return &domain.StoreProfile{
					ID:        "profile",
					Name:      in.Name,
					Phone:     in.Phone,
					UpdatedAt: time.Now(),
				}, nil
			},
		}
		h := NewStoreHandler(stub)

		e := echo.New()
		e.Validator = NewValidator()
		api := e.Group("/api")
		api.POST("/store-profile", h.Update)
		api.PUT("/store-profile", h.Update)

		body := `{"name":"Superfood Sragen","phone":"0822-2001-8781","owner":"Bu Sri"}`
		req := httptest.NewRequest(method, "/api/store-profile", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d (%s)", method, rec.Code, rec.Body.String())
		}
		if got.Name != "Superfood Sragen" || got.Owner != "Bu Sri" {
			t.Fatalf("%s: unexpected upsert input: %+v", method, got)
		}

		var resp struct {
			Success bool                `json:"success"`
			Data    domain.StoreProfile `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", method, err)
		}
		if !resp.Success || resp.Data.Phone != "0822-2001-8781" {
			t.Fatalf("%s: unexpected envelope: %s", method, rec.Body.String())
		}
	}
}
