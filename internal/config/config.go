package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL  string `mapstructure:"API_BASE_URL"`
	Env         string `mapstructure:"ENV"`
	HTTPTimeout int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	SessionFile string `mapstructure:"SESSION_FILE"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("SESSION_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("API_BASE_URL")
	v.BindEnv("ENV")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")
	v.BindEnv("SESSION_FILE")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SessionFile == "" {
		path, err := defaultSessionFile()
		if err != nil {
			return nil, err
		}
		cfg.SessionFile = path
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable. API_BASE_URL must be an
// absolute http(s) URL and the timeout must be positive.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must be an http or https URL, got %q", c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("API_BASE_URL must include a host, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeout)
	}
	return nil
}

// defaultSessionFile places the persisted session under the user config
// directory, namespaced so multiple tools on the same machine don't collide.
func defaultSessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "clinica", "auth-storage.json"), nil
}
