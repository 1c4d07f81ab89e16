package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clinica/clinica/internal/apitest"
)

func runCLI(t *testing.T, srv *apitest.Server, sessionFile string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("API_BASE_URL", srv.URL())
	t.Setenv("SESSION_FILE", sessionFile)
	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("ENV", "test")

	var out bytes.Buffer
	cmd := newRootCmd(&app{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsRequireLogin(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	sessionFile := filepath.Join(t.TempDir(), "auth-storage.json")

	_, err := runCLI(t, srv, sessionFile, "patients", "list")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected login gate, got %v", err)
	}
}

func TestLoginThenList(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.Seed("pacientes", map[string]any{
		"nombre": "Ana", "apellido": "Ruiz", "fecha_nacimiento": "1990-05-02",
	})
	sessionFile := filepath.Join(t.TempDir(), "auth-storage.json")

	out, err := runCLI(t, srv, sessionFile,
		"login", "--email", apitest.Email, "--password", apitest.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "logged in as") {
		t.Errorf("unexpected login output: %q", out)
	}

	// The persisted session carries over to the next invocation.
	out, err = runCLI(t, srv, sessionFile, "patients", "list")
	if err != nil {
		t.Fatalf("patients list: %v", err)
	}
	if !strings.Contains(out, "Ana Ruiz") {
		t.Errorf("expected seeded patient in output, got %q", out)
	}
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	sessionFile := filepath.Join(t.TempDir(), "auth-storage.json")

	if _, err := runCLI(t, srv, sessionFile,
		"login", "--email", apitest.Email, "--password", apitest.Password); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := runCLI(t, srv, sessionFile, "patients", "create", "--nombre", "A")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if len(srv.Rows("pacientes")) != 0 {
		t.Error("expected no record created on invalid form")
	}
}

func TestDeleteWithYesFlag(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	id := srv.Seed("pacientes", map[string]any{
		"nombre": "Ana", "apellido": "Ruiz", "fecha_nacimiento": "1990-05-02",
	})
	sessionFile := filepath.Join(t.TempDir(), "auth-storage.json")

	if _, err := runCLI(t, srv, sessionFile,
		"login", "--email", apitest.Email, "--password", apitest.Password); err != nil {
		t.Fatalf("login: %v", err)
	}

	// --yes skips the prompt and deletes.
	out, err := runCLI(t, srv, sessionFile, "patients", "delete", "1", "--yes")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "eliminado") {
		t.Errorf("expected server message, got %q", out)
	}
	if _, ok := srv.Rows("pacientes")[id]; ok {
		t.Error("expected record removed")
	}
}

func TestWhoami(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	sessionFile := filepath.Join(t.TempDir(), "auth-storage.json")

	if _, err := runCLI(t, srv, sessionFile,
		"login", "--email", apitest.Email, "--password", apitest.Password); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, err := runCLI(t, srv, sessionFile, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, apitest.Email) {
		t.Errorf("expected email in output, got %q", out)
	}
}
