package guard

import (
	"testing"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

func identity(role domain.Role) *domain.Identity {
	return &domain.Identity{ID: "u1", Email: "u@example.com", Role: role}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		pathname string
		want     RouteClass
	}{
		{"/", RouteDefault},
		{"/products", RouteDefault},
		{"/checkout", RouteDefault},
		{"/login", RoutePublic},
		{"/register", RoutePublic},
		{"/admin", RouteAdminArea},
		{"/admin/dashboard", RouteAdminArea},
		{"/admin/products", RouteAdminArea},
		{"/user", RouteForbidden},
		{"/user/profile", RouteForbidden},
		{"/users-of-the-world", RouteForbidden},
	}

	for _, tc := range cases {
		if got := Classify(tc.pathname); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.pathname, got, tc.want)
		}
	}
}

func TestDecide_LoadingMasksEverything(t *testing.T) {
	for _, phase := range []domain.SessionPhase{domain.SessionUninitialized, domain.SessionLoading} {
		for _, path := range []string{"/", "/login", "/admin/dashboard", "/user/profile"} {
			action := Decide(path, domain.SessionState{Phase: phase})
			if action.Kind != ActionAllow {
				t.Errorf("Decide(%q, %v) = %+v, want allow", path, phase, action)
			}
		}
	}
}

func TestDecide_ForbiddenAreaRedirectsEveryone(t *testing.T) {
	states := []domain.SessionState{
		domain.Anonymous(),
		domain.Authenticated(identity(domain.RoleUser)),
		domain.Authenticated(identity(domain.RoleSubAdmin)),
		domain.Authenticated(identity(domain.RoleAdmin)),
	}
	for _, state := range states {
		action := Decide("/user/profile", state)
		if action.Kind != ActionRedirect || action.Target != PathAdminDashboard {
			t.Errorf("Decide(/user/profile, %v) = %+v, want redirect to %s", state.Phase, action, PathAdminDashboard)
		}
	}
}

func TestDecide_AnonymousOnlySeesPublicRoutes(t *testing.T) {
	cases := []struct {
		pathname string
		want     Action
	}{
		{"/login", Allow()},
		{"/register", Allow()},
		{"/", RedirectTo(PathLogin)},
		{"/products", RedirectTo(PathLogin)},
		{"/admin/dashboard", RedirectTo(PathLogin)},
	}
	for _, tc := range cases {
		if got := Decide(tc.pathname, domain.Anonymous()); got != tc.want {
			t.Errorf("Decide(%q, anonymous) = %+v, want %+v", tc.pathname, got, tc.want)
		}
	}
}

func TestDecide_AdminAreaRequiresElevatedRole(t *testing.T) {
	cases := []struct {
		role domain.Role
		want Action
	}{
		{domain.RoleUser, RedirectTo(PathLogin)},
		{domain.RoleSubAdmin, Allow()},
		{domain.RoleAdmin, Allow()},
	}
	for _, tc := range cases {
		got := Decide("/admin/dashboard", domain.Authenticated(identity(tc.role)))
		if got != tc.want {
			t.Errorf("Decide(/admin/dashboard, %s) = %+v, want %+v", tc.role, got, tc.want)
		}
	}
}

func TestDecide_AuthenticatedUserOnOrdinaryRoutes(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleSubAdmin, domain.RoleAdmin} {
		for _, path := range []string{"/", "/products", "/checkout", "/login"} {
			action := Decide(path, domain.Authenticated(identity(role)))
			if action.Kind != ActionAllow {
				t.Errorf("Decide(%q, %s) = %+v, want allow", path, role, action)
			}
		}
	}
}

func TestDecide_IsPure(t *testing.T) {
	state := domain.Authenticated(identity(domain.RoleUser))
	first := Decide("/admin/dashboard", state)
	for i := 0; i < 5; i++ {
		if got := Decide("/admin/dashboard", state); got != first {
			t.Fatalf("Decide returned %+v after returning %+v for identical input", got, first)
		}
	}
}
