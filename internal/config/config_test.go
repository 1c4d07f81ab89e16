package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Errorf("expected default API_BASE_URL, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.HTTPTimeout)
	}
	if cfg.SessionFile == "" {
		t.Error("expected a default session file path")
	}
	if !strings.Contains(cfg.SessionFile, "auth-storage.json") {
		t.Errorf("expected namespaced session file, got %q", cfg.SessionFile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.clinica.example")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.clinica.example" {
		t.Errorf("expected env override, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 5 {
		t.Errorf("expected timeout 5, got %d", cfg.HTTPTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid http", Config{APIBaseURL: "http://localhost:3000", HTTPTimeout: 30}, false},
		{"valid https", Config{APIBaseURL: "https://api.clinica.example", HTTPTimeout: 10}, false},
		{"missing url", Config{HTTPTimeout: 30}, true},
		{"bad scheme", Config{APIBaseURL: "ftp://host", HTTPTimeout: 30}, true},
		{"no host", Config{APIBaseURL: "http://", HTTPTimeout: 30}, true},
		{"zero timeout", Config{APIBaseURL: "http://localhost:3000", HTTPTimeout: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
