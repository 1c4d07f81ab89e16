package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinica/clinica/internal/apitest"
	"github.com/clinica/clinica/internal/platform/api"
	"github.com/clinica/clinica/internal/platform/notify"
	"github.com/clinica/clinica/internal/platform/session"
	"github.com/clinica/clinica/internal/validate"
)

func testService(t *testing.T, srv *apitest.Server) (*Service, *session.Store) {
	t.Helper()
	sess, err := session.Open(filepath.Join(t.TempDir(), "auth-storage.json"))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	client, err := api.New(srv.URL(), sess)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return NewService(client, sess, notify.New(zerolog.Nop())), sess
}

func TestLoginPersistsSession(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	svc, sess := testService(t, srv)

	user, err := svc.Login(context.Background(), Credentials{Email: apitest.Email, Password: apitest.Password})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != apitest.Email || user.Rol != "admin" {
		t.Errorf("unexpected user: %+v", user)
	}
	if !sess.Authenticated() {
		t.Error("expected authenticated session")
	}
	if sess.Token() != apitest.Token {
		t.Errorf("expected stored token, got %q", sess.Token())
	}
}

func TestLoginRejectedKeepsSessionEmpty(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	svc, sess := testService(t, srv)

	_, err := svc.Login(context.Background(), Credentials{Email: apitest.Email, Password: "wrong"})
	if err == nil {
		t.Fatal("expected error on bad password")
	}
	if sess.Authenticated() {
		t.Error("expected no session after rejected login")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	svc, _ := testService(t, srv)

	tests := []struct {
		name     string
		creds    Credentials
		badField string
	}{
		{"bad email", Credentials{Email: "not-an-email", Password: "secret"}, "email"},
		{"empty password", Credentials{Email: apitest.Email, Password: ""}, "password"},
		{"short password", Credentials{Email: apitest.Email, Password: "abc"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.creds)
			es, ok := err.(validate.Errors)
			if !ok || es.Field(tt.badField) == nil {
				t.Errorf("expected %s validation error, got %v", tt.badField, err)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	svc, sess := testService(t, srv)

	if _, err := svc.Login(context.Background(), Credentials{Email: apitest.Email, Password: apitest.Password}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess.Authenticated() {
		t.Error("expected session cleared")
	}
	// Logging out twice is harmless.
	if err := svc.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}
