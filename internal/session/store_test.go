package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/client"
	"github.com/superfood-sragen/storefront-system/internal/core/domain"
)

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func newTestStore(t *testing.T, handler http.Handler) (*Store, *MemStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := NewMemStore()
	api := client.New(server.URL, creds)
	return NewStore(api, creds, zerolog.Nop()), creds
}

func TestStore_StartsUninitialized(t *testing.T) {
	store, _ := newTestStore(t, http.NotFoundHandler())

	if got := store.State().Phase; got != domain.SessionUninitialized {
		t.Fatalf("initial phase = %v, want uninitialized", got)
	}
}

func TestHydrate_NoCredentialLandsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected without a credential, got %s %s", r.Method, r.URL.Path)
	}))

	store.Hydrate(context.Background())

	if got := store.State().Phase; got != domain.SessionAnonymous {
		t.Fatalf("phase after hydration = %v, want anonymous", got)
	}
}

func TestHydrate_ValidCredentialResolvesIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization header = %q", got)
		}
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"id": "u1", "email": "a@example.com", "displayName": "Alice", "role": "admin",
		})
	})

	store, creds := newTestStore(t, mux)
	_ = creds.Save("tok-1")

	store.Hydrate(context.Background())

	state := store.State()
	if state.Phase != domain.SessionAuthenticated {
		t.Fatalf("phase = %v, want authenticated", state.Phase)
	}
	if state.Identity == nil || state.Identity.ID != "u1" || state.Identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", state.Identity)
	}
}

func TestHydrate_RejectedCredentialIsClearedAndAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "token revoked or expired", nil)
	})

	store, creds := newTestStore(t, mux)
	_ = creds.Save("stale")

	store.Hydrate(context.Background())

	if got := store.State().Phase; got != domain.SessionAnonymous {
		t.Fatalf("phase = %v, want anonymous", got)
	}
	if _, err := creds.Load(); err == nil {
		t.Fatalf("rejected credential should have been cleared")
	}
}

func TestHydrate_RunsOnce(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{"id": "u1", "role": "user"})
	})

	store, creds := newTestStore(t, mux)
	_ = creds.Save("tok")

	store.Hydrate(context.Background())
	store.Hydrate(context.Background())
	store.Hydrate(context.Background())

	if calls != 1 {
		t.Fatalf("identity endpoint called %d times, want 1", calls)
	}
}

func TestLogin_SuccessPersistsTokenAndAuthenticates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@example.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"token": "tok-login",
			"user":  map[string]any{"id": "u1", "email": "a@example.com", "role": "sub_admin"},
		})
	})

	store, creds := newTestStore(t, mux)

	if err := store.Login(context.Background(), "a@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if tok, err := creds.Load(); err != nil || tok != "tok-login" {
		t.Fatalf("persisted credential = %q, %v", tok, err)
	}
	if !store.IsSubAdmin() {
		t.Fatalf("expected sub_admin session, got %+v", store.State())
	}
}

func TestLogin_FailureCarriesBackendMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "invalid credentials", nil)
	})

	store, creds := newTestStore(t, mux)

	err := store.Login(context.Background(), "a@example.com", "wrong")
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("expected backend message, got %v", err)
	}
	if store.State().Phase != domain.SessionUninitialized {
		t.Fatalf("failed login must not change state, got %v", store.State().Phase)
	}
	if _, err := creds.Load(); err == nil {
		t.Fatalf("failed login must not persist a credential")
	}
}

func TestLogin_TransportFailureFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	creds := NewMemStore()
	api := client.New(server.URL, creds)
	server.Close() // every request now fails at the transport

	store := NewStore(api, creds, zerolog.Nop())

	err := store.Login(context.Background(), "a@example.com", "secret")
	if err == nil || err.Error() != "Login failed" {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestRegister_DefaultsRoleToUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != "user" {
			t.Errorf("role sent = %q, want user", body["role"])
		}
		writeEnvelope(w, http.StatusCreated, true, "", map[string]any{
			"token": "tok-reg",
			"user":  map[string]any{"id": "u2", "email": body["email"], "role": "user"},
		})
	})

	store, _ := newTestStore(t, mux)

	if err := store.Register(context.Background(), "b@example.com", "secret", "Bob", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !store.IsAuthenticated() {
		t.Fatalf("expected authenticated session after registration")
	}
}

func TestLogout_ClearsCredentialAndGoesAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"token": "tok",
			"user":  map[string]any{"id": "u1", "role": "user"},
		})
	})

	store, creds := newTestStore(t, mux)
	if err := store.Login(context.Background(), "a@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	store.Logout()

	if store.State().Phase != domain.SessionAnonymous {
		t.Fatalf("phase after logout = %v, want anonymous", store.State().Phase)
	}
	if _, err := creds.Load(); err == nil {
		t.Fatalf("credential should be gone after logout")
	}
}

func TestSubscribe_NotifiesEveryTransitionUntilUnsubscribed(t *testing.T) {
	store, _ := newTestStore(t, http.NotFoundHandler())

	var phases []domain.SessionPhase
	unsubscribe := store.Subscribe(func(s domain.SessionState) {
		phases = append(phases, s.Phase)
	})

	store.Hydrate(context.Background())

	want := []domain.SessionPhase{domain.SessionLoading, domain.SessionAnonymous}
	if len(phases) != len(want) {
		t.Fatalf("observed phases %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("observed phases %v, want %v", phases, want)
		}
	}

	unsubscribe()
	store.Logout()

	if len(phases) != len(want) {
		t.Fatalf("unsubscribed observer still notified: %v", phases)
	}
}
