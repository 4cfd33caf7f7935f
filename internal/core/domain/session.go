package domain

// SessionPhase enumerates the lifecycle of a client session.
type SessionPhase int

const (
	// SessionUninitialized means no hydration attempt has started yet.
	SessionUninitialized SessionPhase = iota
	// SessionLoading means hydration is in flight; authorization decisions
	// must be suspended while this phase holds.
	SessionLoading
	// SessionAuthenticated means an Identity has been resolved.
	SessionAuthenticated
	// SessionAnonymous means no valid credential exists.
	SessionAnonymous
)

func (p SessionPhase) String() string {
	switch p {
	case SessionUninitialized:
		return "uninitialized"
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// SessionState is a tagged union over the session lifecycle: Identity is
// non-nil exactly when Phase is SessionAuthenticated.
type SessionState struct {
	Phase    SessionPhase
	Identity *Identity
}

// Authenticated builds the state for a resolved identity.
func Authenticated(id *Identity) SessionState {
	return SessionState{Phase: SessionAuthenticated, Identity: id}
}

// Anonymous is the state with no identity.
func Anonymous() SessionState {
	return SessionState{Phase: SessionAnonymous}
}

// IsAuthenticated reports whether an identity is present.
func (s SessionState) IsAuthenticated() bool {
	return s.Phase == SessionAuthenticated && s.Identity != nil
}

// Role returns the identity's role, or RoleUser when no identity is present.
func (s SessionState) Role() Role {
	if !s.IsAuthenticated() {
		return RoleUser
	}
	return s.Identity.Role
}

// IsAdmin reports whether the authenticated identity holds the admin role.
func (s SessionState) IsAdmin() bool {
	return s.IsAuthenticated() && s.Identity.Role == RoleAdmin
}

// IsSubAdmin reports whether the authenticated identity holds the sub_admin role.
func (s SessionState) IsSubAdmin() bool {
	return s.IsAuthenticated() && s.Identity.Role == RoleSubAdmin
}
