package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, role domain.Role, hasRole bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if hasRole {
		c.Set(CtxRole, role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestAdminArea(t *testing.T) {
	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleSubAdmin, http.StatusOK},
		{domain.RoleUser, http.StatusForbidden},
	}
	for _, tc := range cases {
		if rec := runRBAC(t, AdminArea(), tc.role, true); rec.Code != tc.want {
			t.Errorf("AdminArea with %s: %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}

func TestAdminOnly(t *testing.T) {
	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleSubAdmin, http.StatusForbidden},
		{domain.RoleUser, http.StatusForbidden},
	}
	for _, tc := range cases {
		if rec := runRBAC(t, AdminOnly(), tc.role, true); rec.Code != tc.want {
			t.Errorf("AdminOnly with %s: %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}

func TestRBAC_MissingRoleIsForbidden(t *testing.T) {
	rec := runRBAC(t, AdminArea(), "", false)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without a role, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if success, _ := body["success"].(bool); success {
		t.Fatalf("expected success=false envelope, got %v", body)
	}
}
