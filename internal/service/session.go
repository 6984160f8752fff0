package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/biblionet/ui-api/internal/domain/auth"
	apperrors "github.com/biblionet/ui-api/internal/errors"
	"github.com/biblionet/ui-api/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Gateway ports.AuthGateway
	Store   ports.CredentialStore
	Logger  *slog.Logger
}

// SessionManager coordinates the auth gateway and the credential store. It is
// the single writer of credentials: handlers never touch the store directly.
type SessionManager struct {
	gateway ports.AuthGateway
	store   ports.CredentialStore
	logger  *slog.Logger
	login   singleflight.Group
}

// NewSessionManager constructs a new SessionManager.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		gateway: opts.Gateway,
		store:   opts.Store,
		logger:  logger,
	}
}

// Hydrate rebuilds the session for a browser session ID from stored
// credentials. A missing token yields the unauthenticated session. A token
// without a readable profile also yields the unauthenticated session: the
// two credentials only count together, never one at a time. Stored values
// are left in place either way so a transient read problem does not log the
// user out permanently.
func (s *SessionManager) Hydrate(ctx context.Context, sid string) (auth.Session, error) {
	if sid == "" {
		return auth.Session{}, nil
	}

	token, ok, err := s.store.Get(ctx, sid, ports.CredKeyToken)
	if err != nil {
		return auth.Session{}, fmt.Errorf("read token credential: %w", err)
	}
	if !ok || !credentialPresent(token) {
		return auth.Session{}, nil
	}

	raw, ok, err := s.store.Get(ctx, sid, ports.CredKeyUser)
	if err != nil {
		return auth.Session{}, fmt.Errorf("read user credential: %w", err)
	}
	if !ok || !credentialPresent(raw) {
		s.logger.Warn("token credential present without a user profile, treating session as unauthenticated", "sid", sid)
		return auth.Session{}, nil
	}

	var profile auth.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.logger.Warn("stored user profile is not valid JSON, treating session as unauthenticated", "sid", sid, "error", err)
		return auth.Session{}, nil
	}
	if _, ok := auth.ParseRole(string(profile.Role)); !ok {
		// Data-integrity signal: the session stays authenticated but the
		// role fails every admission check.
		s.logger.Warn("stored user profile carries an unrecognized role", "sid", sid, "role", string(profile.Role))
	}

	return auth.Session{Token: token, Profile: &profile}, nil
}

// Login authenticates the credentials against the backend and persists the
// resulting grant under the browser session ID. Concurrent logins for the
// same browser session are coalesced into a single backend call.
func (s *SessionManager) Login(ctx context.Context, sid string, creds auth.Credentials) (auth.Session, error) {
	if sid == "" {
		return auth.Session{}, errors.New("browser session ID is required")
	}
	if creds.Email == "" {
		return auth.Session{}, apperrors.ValidationField("email", "email is required")
	}
	if creds.Password == "" {
		return auth.Session{}, apperrors.ValidationField("password", "password is required")
	}

	result, err, _ := s.login.Do(sid, func() (any, error) {
		return s.doLogin(ctx, sid, creds)
	})
	if err != nil {
		return auth.Session{}, err
	}
	return result.(auth.Session), nil
}

func (s *SessionManager) doLogin(ctx context.Context, sid string, creds auth.Credentials) (auth.Session, error) {
	grant, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return auth.Session{}, err
	}

	raw, err := json.Marshal(grant.Profile)
	if err != nil {
		return auth.Session{}, fmt.Errorf("encode user profile: %w", err)
	}

	if err := s.store.SetPair(ctx, sid, grant.Token, string(raw)); err != nil {
		return auth.Session{}, fmt.Errorf("persist credentials: %w", err)
	}

	profile := grant.Profile
	s.logger.Info("login succeeded", "sid", sid, "user_id", profile.ID, "role", string(profile.Role))
	return auth.Session{Token: grant.Token, Profile: &profile}, nil
}

// Logout removes the stored credentials for a browser session ID. Logging
// out a session that was never logged in is not an error.
func (s *SessionManager) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}

	if err := s.store.Remove(ctx, sid, ports.CredKeyToken, ports.CredKeyUser); err != nil {
		return fmt.Errorf("remove credentials: %w", err)
	}

	s.logger.Info("logout", "sid", sid)
	return nil
}

// credentialPresent reports whether a stored value is usable. The literal
// string "undefined" is treated as absent because it is what a browser
// writes when it serializes a missing value.
func credentialPresent(v string) bool {
	return v != "" && v != "undefined"
}
