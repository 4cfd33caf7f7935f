// Package session owns the storefront's "who is logged in" state: a single
// explicitly-constructed Store holding a tagged session state, hydrated once
// at startup from the persisted credential and mutated only by its own
// operations. Everything else reads it, directly or through a subscription.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/client"
	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

// Store is the process-wide session state holder. Construct one at app start
// with NewStore and pass it to whatever needs it; there is no ambient global.
type Store struct {
	api   *client.Client
	creds CredentialStore
	log   zerolog.Logger

	mu       sync.Mutex
	state    domain.SessionState
	hydrated bool
	subs     map[int]func(domain.SessionState)
	nextSub  int
}

func NewStore(api *client.Client, creds CredentialStore, log zerolog.Logger) *Store {
	return &Store{
		api:   api,
		creds: creds,
		log:   log,
		state: domain.SessionState{Phase: domain.SessionUninitialized},
		subs:  make(map[int]func(domain.SessionState)),
	}
}

// State returns the current session state.
func (s *Store) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run on every state transition and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(domain.SessionState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Hydrate resolves the persisted credential into an identity. It runs once
// per process: repeated calls are no-ops, so Loading can never recur after
// the first resolution. Every failure path lands on Anonymous; hydration
// never surfaces an error because an invalid or missing credential is the
// expected steady state of a first visit.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return
	}
	s.hydrated = true
	s.mu.Unlock()

	s.setState(domain.SessionState{Phase: domain.SessionLoading})

	if _, err := s.creds.Load(); err != nil {
		s.setState(domain.Anonymous())
		return
	}

	var id domain.Identity
	if err := s.api.Get(ctx, "/auth/me", &id); err != nil {
		s.log.Debug().Err(err).Msg("credential did not resolve, starting anonymous")
		_ = s.creds.Clear()
		s.setState(domain.Anonymous())
		return
	}

	id.Role = domain.ParseRole(string(id.Role))
	s.setState(domain.Authenticated(&id))
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role,omitempty"`
}

type authPayload struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

// Login exchanges credentials for a session. On success the token is
// persisted before the state transition; on failure the state is untouched
// and the returned error carries the backend's message when it sent one.
func (s *Store) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "/auth/login", credentialsRequest{Email: email, Password: password}, "Login failed")
}

// Register creates an account and logs it in. The requested role defaults to
// user; the server is authoritative and this client never enforces roles.
func (s *Store) Register(ctx context.Context, email, password, displayName, role string) error {
	if role == "" {
		role = string(domain.RoleUser)
	}
	req := credentialsRequest{Email: email, Password: password, DisplayName: displayName, Role: role}
	return s.authenticate(ctx, "/auth/register", req, "Registration failed")
}

func (s *Store) authenticate(ctx context.Context, path string, req credentialsRequest, fallback string) error {
	var payload authPayload
	if err := s.api.Post(ctx, path, req, &payload); err != nil {
		return errors.New(client.Message(err, fallback))
	}
	if payload.Token == "" || payload.User == nil {
		return errors.New(fallback)
	}

	if err := s.creds.Save(payload.Token); err != nil {
		return err
	}
	payload.User.Role = domain.ParseRole(string(payload.User.Role))
	s.setState(domain.Authenticated(payload.User))
	return nil
}

// Logout clears the persisted credential and transitions to Anonymous. It is
// local, synchronous, and idempotent; no network call is awaited.
func (s *Store) Logout() {
	_ = s.creds.Clear()
	s.setState(domain.Anonymous())
}

// IsAuthenticated reports whether an identity is resolved.
func (s *Store) IsAuthenticated() bool {
	return s.State().IsAuthenticated()
}

// IsAdmin reports whether the identity holds the admin role.
func (s *Store) IsAdmin() bool {
	return s.State().IsAdmin()
}

// IsSubAdmin reports whether the identity holds the sub_admin role.
func (s *Store) IsSubAdmin() bool {
	return s.State().IsSubAdmin()
}

func (s *Store) setState(state domain.SessionState) {
	s.mu.Lock()
	s.state = state
	fns := make([]func(domain.SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock; a subscriber may read the store again.
	for _, fn := range fns {
		fn(state)
	}
}
