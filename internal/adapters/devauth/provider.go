package devauth

// Package devauth provides a simple, config-driven AuthGateway for local
// development. It accepts any non-empty credentials and issues the configured
// identity with a fresh random token, so the whole session flow can run
// without a live backend.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	apperrors "github.com/biblionet/ui-api/internal/errors"
	"github.com/biblionet/ui-api/internal/ports"
)

// Config controls the dev gateway identity.
type Config struct {
	UserID      int
	DisplayName string
	Email       string
	Role        string
}

// Gateway implements ports.AuthGateway for local development.
type Gateway struct {
	profile domainauth.Profile
}

var _ ports.AuthGateway = (*Gateway)(nil)

// NewGateway constructs a dev gateway from Config.
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	role, ok := domainauth.ParseRole(cfg.Role)
	if !ok {
		return nil, fmt.Errorf("dev auth: unknown role %q", cfg.Role)
	}
	return &Gateway{
		profile: domainauth.Profile{
			ID:          cfg.UserID,
			DisplayName: cfg.DisplayName,
			Email:       cfg.Email,
			Role:        role,
		},
	}, nil
}

// Login accepts any non-empty credential pair and returns the configured
// identity under a fresh random token.
func (g *Gateway) Login(_ context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	if creds.Email == "" || creds.Password == "" {
		return domainauth.Grant{}, apperrors.AuthRejected(http.StatusUnauthorized, "credentials are required")
	}

	token, err := randomToken(24)
	if err != nil {
		return domainauth.Grant{}, fmt.Errorf("generate dev token: %w", err)
	}
	return domainauth.Grant{Token: token, Profile: g.profile}, nil
}

// randomToken returns a URL-safe random string of n bytes of entropy.
func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
