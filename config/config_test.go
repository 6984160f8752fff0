package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func loadConfig(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := loadConfig(t)

	if cfg.Auth.Mode != AuthModeBackend {
		t.Errorf("Auth.Mode = %q, want %q", cfg.Auth.Mode, AuthModeBackend)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Backend.LibraryURL != "http://localhost:4000" {
		t.Errorf("Backend.LibraryURL = %q", cfg.Backend.LibraryURL)
	}
	if cfg.Backend.UsersURL != cfg.Backend.LibraryURL {
		t.Errorf("Backend.UsersURL = %q, want fallback to LibraryURL", cfg.Backend.UsersURL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("Backend.Timeout = %v, want 10s", cfg.Backend.Timeout)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("Redis.URI = %q", cfg.Redis.URI)
	}
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_MODE", "mock")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("BACKEND_LIBRARY_URL", "http://biblioteca:4000")
	t.Setenv("BACKEND_USERS_URL", "http://usuarios:4001")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_URI", "redis:6379")

	cfg := loadConfig(t)

	if cfg.Auth.Mode != AuthModeMock {
		t.Errorf("Auth.Mode = %q, want mock", cfg.Auth.Mode)
	}
	if cfg.Auth.SessionTTL != 30*time.Minute {
		t.Errorf("Auth.SessionTTL = %v, want 30m", cfg.Auth.SessionTTL)
	}
	if cfg.Backend.LibraryURL != "http://biblioteca:4000" {
		t.Errorf("Backend.LibraryURL = %q", cfg.Backend.LibraryURL)
	}
	if cfg.Backend.UsersURL != "http://usuarios:4001" {
		t.Errorf("Backend.UsersURL = %q", cfg.Backend.UsersURL)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.URI != "redis:6379" {
		t.Errorf("Redis.URI = %q", cfg.Redis.URI)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input     string
		want      AuthMode
		expectErr bool
	}{
		{input: "backend", want: AuthModeBackend},
		{input: "MOCK", want: AuthModeMock},
		{input: "oauth", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, tt := range tests {
		var mode AuthMode
		err := mode.UnmarshalText([]byte(tt.input))
		if tt.expectErr {
			if err == nil {
				t.Errorf("UnmarshalText(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("UnmarshalText(%q): %v", tt.input, err)
			continue
		}
		if mode != tt.want {
			t.Errorf("UnmarshalText(%q) = %q, want %q", tt.input, mode, tt.want)
		}
	}
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{}
	cfg.Auth.SessionTTL = -time.Hour
	cfg.Backend.Timeout = 0
	cfg.Sanitize()

	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want guardrail default 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("Backend.Timeout = %v, want guardrail default 10s", cfg.Backend.Timeout)
	}
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := loadConfig(t)

	if !cfg.IsDev {
		t.Error("IsDev = false, want true when NODE_ENV=development")
	}
}
