// Package session holds the authenticated user and bearer token, persisted to
// a namespaced JSON file so a session survives process restarts. The store is
// injected into the API client and the command gate; it is never global state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated account as returned by POST /auth/login.
type User struct {
	ID     int    `json:"id"`
	Rol    string `json:"rol"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// state is the persisted file shape.
type state struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// Store is a mutex-guarded session holder with write-through persistence:
// every mutation is flushed to disk before it returns.
type Store struct {
	mu    sync.RWMutex
	path  string
	user  *User
	token string
}

// Open loads the session persisted at path. A missing file is not an error;
// it simply yields an unauthenticated store.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt session file should not lock the user out; start clean.
		return s, nil
	}
	s.user = st.User
	s.token = st.Token
	return s, nil
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the authenticated user, or nil.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// SetSession stores the user and token and persists them.
func (s *Store) SetSession(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
	return s.persistLocked()
}

// Clear drops the session and persists the empty state. It reports whether
// there was a session to clear, so callers can avoid double-handling a 401.
func (s *Store) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.token != ""
	s.user = nil
	s.token = ""
	return had, s.persistLocked()
}

// ExpiresAt returns the token's exp claim, when present. The token is parsed
// without signature verification: the client only displays the expiry, the
// server remains the authority on token validity.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(state{User: s.user, Token: s.token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
