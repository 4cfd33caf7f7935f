// Package guard decides, per navigation, whether the current session may view
// a route. The decision itself is a pure function over (pathname, session
// state); redirect side effects live in the Driver so the rules stay
// unit-testable without a navigation stack.
package guard

import "strings"

// Well-known redirect targets.
const (
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathAdminDashboard = "/admin/dashboard"
)

// RouteClass is the authorization classification of a pathname. It is derived
// on every evaluation, never stored.
type RouteClass int

const (
	// RouteDefault has no special requirement beyond authentication.
	RouteDefault RouteClass = iota
	// RoutePublic is reachable without a session (login, registration).
	RoutePublic
	// RouteAdminArea requires role admin or sub_admin.
	RouteAdminArea
	// RouteForbidden is a retired area; every session is redirected away.
	RouteForbidden
)

func (c RouteClass) String() string {
	switch c {
	case RoutePublic:
		return "public"
	case RouteAdminArea:
		return "admin_area"
	case RouteForbidden:
		return "forbidden"
	}
	return "default"
}

// Classify maps a pathname onto its route class.
func Classify(pathname string) RouteClass {
	switch {
	case strings.HasPrefix(pathname, "/user"):
		return RouteForbidden
	case strings.HasPrefix(pathname, PathLogin), strings.HasPrefix(pathname, PathRegister):
		return RoutePublic
	case strings.HasPrefix(pathname, "/admin"):
		return RouteAdminArea
	}
	return RouteDefault
}
