package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"
)

// DefaultCredentialTTL is how long a persisted credential stays readable.
// It matches the server-side token lifetime.
const DefaultCredentialTTL = 7 * 24 * time.Hour

// ErrNoCredential means no usable credential is persisted: none was saved,
// or the saved one has expired.
var ErrNoCredential = errors.New("no persisted credential")

// CredentialStore persists the opaque session token across process restarts.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type credentialRecord struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore keeps the credential in a single JSON file. Expired records are
// deleted on read, so a stale token never reaches the network.
type FileStore struct {
	path string
	ttl  time.Duration
}

// NewFileStore builds a FileStore writing to path with DefaultCredentialTTL.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, ttl: DefaultCredentialTTL}
}

func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", err
	}

	var rec credentialRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		_ = os.Remove(s.path)
		return "", ErrNoCredential
	}
	if rec.Token == "" || time.Now().After(rec.ExpiresAt) {
		_ = os.Remove(s.path)
		return "", ErrNoCredential
	}
	return rec.Token, nil
}

func (s *FileStore) Save(token string) error {
	rec := credentialRecord{Token: token, ExpiresAt: time.Now().Add(s.ttl)}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the credential. Clearing an absent credential is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory CredentialStore for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoCredential
	}
	return s.token, nil
}

func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
