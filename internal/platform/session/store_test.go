package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "clinica", "auth-storage.json")
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(tempPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Authenticated() {
		t.Error("expected unauthenticated store for missing file")
	}
}

func TestSetSessionPersists(t *testing.T) {
	path := tempPath(t)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	user := User{ID: 1, Rol: "admin", Email: "ana@clinica.example", Nombre: "Ana"}
	if err := s.SetSession(user, "tok-123"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// A second store opened on the same path sees the session.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if s2.Token() != "tok-123" {
		t.Errorf("expected persisted token, got %q", s2.Token())
	}
	u := s2.User()
	if u == nil || u.Email != "ana@clinica.example" || u.Rol != "admin" {
		t.Errorf("unexpected persisted user: %+v", u)
	}
}

func TestClear(t *testing.T) {
	path := tempPath(t)
	s, _ := Open(path)
	_ = s.SetSession(User{ID: 1, Nombre: "Ana"}, "tok")

	had, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !had {
		t.Error("expected Clear to report a prior session")
	}
	if s.Authenticated() || s.User() != nil {
		t.Error("expected empty store after Clear")
	}

	// Clearing again reports nothing to clear.
	had, err = s.Clear()
	if err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if had {
		t.Error("expected second Clear to report no session")
	}

	// Persisted state is empty too.
	s2, _ := Open(path)
	if s2.Authenticated() {
		t.Error("expected cleared session on reopen")
	}
}

func TestOpenCorruptFileStartsClean(t *testing.T) {
	path := tempPath(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Authenticated() {
		t.Error("expected clean store on corrupt file")
	}
}

// unsignedJWT builds an unsigned token with the given exp, enough for the
// client-side expiry display which never verifies signatures.
func unsignedJWT(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "1"})
	return fmt.Sprintf("%s.%s.", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestExpiresAt(t *testing.T) {
	s, _ := Open(tempPath(t))

	if _, ok := s.ExpiresAt(); ok {
		t.Error("expected no expiry without a token")
	}

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	_ = s.SetSession(User{ID: 1}, unsignedJWT(exp))

	got, ok := s.ExpiresAt()
	if !ok {
		t.Fatal("expected expiry from token")
	}
	if !got.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, got)
	}
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	s, _ := Open(tempPath(t))
	_ = s.SetSession(User{ID: 1}, "not-a-jwt")
	if _, ok := s.ExpiresAt(); ok {
		t.Error("expected no expiry for opaque token")
	}
}
