package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/superfood-sragen/storefront-system/internal/guard"
)

func runEdge(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := EdgeGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestEdgeGuard_RedirectsRetiredArea(t *testing.T) {
	for _, path := range []string{"/user", "/user/profile", "/user/orders/1"} {
		rec := runEdge(t, path)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Errorf("%s: status %d, want 307", path, rec.Code)
			continue
		}
		if got := rec.Header().Get("Location"); got != guard.PathAdminDashboard {
			t.Errorf("%s: location %q, want %s", path, got, guard.PathAdminDashboard)
		}
	}
}

func TestEdgeGuard_PassesOrdinaryPaths(t *testing.T) {
	for _, path := range []string{"/", "/login", "/admin/dashboard", "/products"} {
		if rec := runEdge(t, path); rec.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200", path, rec.Code)
		}
	}
}

func TestEdgeGuard_NeverTouchesAPIRoutes(t *testing.T) {
	// /api/users is an admin endpoint, not the retired page area.
	if rec := runEdge(t, "/api/users"); rec.Code != http.StatusOK {
		t.Fatalf("/api/users: status %d, want 200", rec.Code)
	}
}
