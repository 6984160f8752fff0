package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
)

// Credential store keys. The store holds exactly these two keys per browser
// session; no other component writes them.
const (
	CredKeyToken = "token"
	CredKeyUser  = "user"
)

// AuthGateway authenticates credentials against the remote library backend.
// The gateway is opaque: send credentials, get a grant or a failure.
type AuthGateway interface {
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error)
}

// CredentialStore persists the token and serialized profile for the lifetime
// of a browser session, keyed by the browser-session ID.
type CredentialStore interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(ctx context.Context, sid, key string) (value string, ok bool, err error)

	// Set writes a single key.
	Set(ctx context.Context, sid, key, value string) error

	// SetPair writes both credential keys atomically: either both values are
	// stored or neither is.
	SetPair(ctx context.Context, sid, token, user string) error

	// Remove deletes the given keys. Removing absent keys is not an error.
	Remove(ctx context.Context, sid string, keys ...string) error
}
