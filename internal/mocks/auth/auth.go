package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	apperrors "github.com/biblionet/ui-api/internal/errors"
	"github.com/biblionet/ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthGateway     = (*MockAuthGateway)(nil)
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
)

// MockAuthGateway simulates the backend login endpoint for tests.
// With no overrides it accepts any credentials and issues DefaultGrant.
type MockAuthGateway struct {
	LoginFunc func(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error)

	// DefaultGrant is returned when LoginFunc is nil.
	DefaultGrant domainauth.Grant

	// Calls records every credential pair seen, in order.
	mu    sync.Mutex
	Calls []domainauth.Credentials
}

// NewMockAuthGateway creates a MockAuthGateway with a sensible default grant.
func NewMockAuthGateway() *MockAuthGateway {
	return &MockAuthGateway{
		DefaultGrant: domainauth.Grant{
			Token: "mock-token-1",
			Profile: domainauth.Profile{
				ID:          1,
				DisplayName: "Mock Admin",
				Email:       "mock.admin@example.com",
				Role:        domainauth.RoleAdmin,
			},
		},
	}
}

func (m *MockAuthGateway) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Grant, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, creds)
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return m.DefaultGrant, nil
}

// RejectingGateway returns a gateway that refuses every login with the given
// status and message, as the real backend would.
func RejectingGateway(status int, message string) *MockAuthGateway {
	gw := NewMockAuthGateway()
	gw.LoginFunc = func(_ context.Context, _ domainauth.Credentials) (domainauth.Grant, error) {
		return domainauth.Grant{}, apperrors.AuthRejected(status, message)
	}
	return gw
}

// MemoryCredentialStore is an in-memory credential store for unit tests.
// It is safe for concurrent use and mirrors the Redis adapter's semantics,
// including the atomic pair write.
type MemoryCredentialStore struct {
	mu     sync.Mutex
	values map[string]string

	// FailSetPair, when set, makes SetPair return that error without writing.
	FailSetPair error
}

// NewMemoryCredentialStore creates a new in-memory credential store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{values: make(map[string]string)}
}

func (m *MemoryCredentialStore) key(sid, key string) string { return sid + ":" + key }

func (m *MemoryCredentialStore) Get(_ context.Context, sid, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[m.key(sid, key)]
	return v, ok, nil
}

func (m *MemoryCredentialStore) Set(_ context.Context, sid, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.key(sid, key)] = value
	return nil
}

func (m *MemoryCredentialStore) SetPair(_ context.Context, sid, token, user string) error {
	if m.FailSetPair != nil {
		return m.FailSetPair
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.key(sid, ports.CredKeyToken)] = token
	m.values[m.key(sid, ports.CredKeyUser)] = user
	return nil
}

func (m *MemoryCredentialStore) Remove(_ context.Context, sid string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, m.key(sid, k))
	}
	return nil
}

// Len reports how many values are stored, for test assertions.
func (m *MemoryCredentialStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
