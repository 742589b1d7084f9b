package auth

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"catalogadmin/pkg/errors"
)

// TokenKey is the fixed key the admin token is stored under, mirroring the
// browser front-end's single localStorage entry.
const TokenKey = "adminToken"

// TokenStore supplies the bearer token for admin-only gateway calls. It is
// injected into the gateway client rather than read from ambient state, so
// tests can swap in a deterministic store.
type TokenStore interface {
	// Token returns the stored bearer token, or AUTHENTICATION_REQUIRED
	// when none is stored or the stored JWT has expired.
	Token() (string, error)
	Set(token string) error
	Clear() error
}

// expired reports whether token is a JWT whose exp claim is in the past.
// Opaque (non-JWT) tokens are never considered expired locally.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

// FileStore persists the token as a small JSON document on disk, the client
// side's only persisted local state.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.AuthenticationRequired()
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", errors.AuthenticationRequired()
	}
	token := entries[TokenKey]
	if token == "" || expired(token) {
		return "", errors.AuthenticationRequired()
	}
	return token, nil
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]string{TokenKey: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore holds a token in memory for tests and short-lived sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || expired(s.token) {
		return "", errors.AuthenticationRequired()
	}
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
