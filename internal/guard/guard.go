package guard

import "github.com/superfood-sragen/storefront-system/internal/core/domain"

// ActionKind discriminates guard decisions.
type ActionKind int

const (
	// ActionAllow lets the navigation proceed.
	ActionAllow ActionKind = iota
	// ActionRedirect sends the session to Action.Target instead.
	ActionRedirect
)

// Action is the outcome of a guard decision.
type Action struct {
	Kind   ActionKind
	Target string
}

// Allow is the no-op decision.
func Allow() Action {
	return Action{Kind: ActionAllow}
}

// RedirectTo builds a redirect decision.
func RedirectTo(target string) Action {
	return Action{Kind: ActionRedirect, Target: target}
}

// Decide evaluates the route rules for a pathname under a session state.
// It is pure: same inputs, same Action, no side effects.
//
// Rules, first match wins:
//  1. Hydration in flight masks everything; deciding before the persisted
//     credential has resolved would bounce already-authenticated sessions
//     to the login screen.
//  2. Retired areas redirect away for every session, authenticated or not.
//  3. Anonymous sessions may only see public routes.
//  4. The admin area requires the admin or sub_admin role; ordinary users
//     have no admin destination and are sent back to login.
func Decide(pathname string, state domain.SessionState) Action {
	if state.Phase == domain.SessionLoading || state.Phase == domain.SessionUninitialized {
		return Allow()
	}

	class := Classify(pathname)

	if class == RouteForbidden {
		return RedirectTo(PathAdminDashboard)
	}

	if !state.IsAuthenticated() {
		if class == RoutePublic {
			return Allow()
		}
		return RedirectTo(PathLogin)
	}

	if class == RouteAdminArea && !state.Role().CanAccessAdminArea() {
		return RedirectTo(PathLogin)
	}

	return Allow()
}
