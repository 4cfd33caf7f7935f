package guard

import "github.com/superfood-sragen/storefront-system/internal/core/domain"

// Requirement is a view's declarative access requirement, layered on top of
// the route rules.
type Requirement int

const (
	// RequireNone gates only on authentication and the route class.
	RequireNone Requirement = iota
	// RequireSubAdmin needs sub_admin or admin.
	RequireSubAdmin
	// RequireAdmin needs the full admin role.
	RequireAdmin
)

// Outcome is a view gate decision.
type Outcome int

const (
	// OutcomeLoading renders the loading placeholder and nothing else.
	OutcomeLoading Outcome = iota
	// OutcomeHidden renders nothing; the route guard owns the redirect.
	OutcomeHidden
	// OutcomeRedirect renders nothing and navigates to RedirectTarget: the
	// session is legitimate for the area but under-privileged for this view.
	OutcomeRedirect
	// OutcomeRender shows the wrapped content.
	OutcomeRender
)

// RedirectTarget is where OutcomeRedirect sends the session.
const RedirectTarget = PathAdminDashboard

// ViewGate is the per-view access check. Evaluate is re-run from scratch on
// every input change; no outcome is terminal.
type ViewGate struct {
	Requirement Requirement
}

// Evaluate decides what the view renders for the given inputs.
func (g ViewGate) Evaluate(pathname string, state domain.SessionState) Outcome {
	if state.Phase == domain.SessionLoading || state.Phase == domain.SessionUninitialized {
		return OutcomeLoading
	}
	if !state.IsAuthenticated() {
		return OutcomeHidden
	}

	class := Classify(pathname)
	if class == RouteForbidden {
		return OutcomeHidden
	}
	if class == RouteAdminArea && !state.Role().CanAccessAdminArea() {
		return OutcomeHidden
	}

	switch g.Requirement {
	case RequireAdmin:
		if !state.IsAdmin() {
			return OutcomeRedirect
		}
	case RequireSubAdmin:
		if !state.IsSubAdmin() && !state.IsAdmin() {
			return OutcomeRedirect
		}
	}

	return OutcomeRender
}
