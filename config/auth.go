package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeBackend authenticates against the remote library backend.
	AuthModeBackend AuthMode = "backend"
	// AuthModeMock uses a canned identity (for development and testing only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "backend", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: backend, mock)", v)
	}
}

// DevAuthConfig controls the mock authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID      int    `env:"USER_ID"      envDefault:"1"`
	DisplayName string `env:"DISPLAY_NAME" envDefault:"Dev Admin"`
	Email       string `env:"EMAIL"        envDefault:"dev@example.com"`
	Role        string `env:"ROLE"         envDefault:"Admin"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication gateway to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"backend"`

	// SessionTTL is how long stored credentials live without a fresh login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 12 * time.Hour
	}
}
