package config

import "time"

// BackendConfig contains the remote library backend configuration.
type BackendConfig struct {
	// LibraryURL is the base URL of the library backend, which serves both
	// /api/auth and /api/library.
	LibraryURL string `env:"LIBRARY_URL" envDefault:"http://localhost:4000"`

	// UsersURL is the base URL of the users service. Defaults to LibraryURL
	// when unset, for deployments where both live behind one host.
	UsersURL string `env:"USERS_URL"`

	// Timeout bounds each backend request end to end.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.UsersURL == "" {
		b.UsersURL = b.LibraryURL
	}
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
}
