package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/biblionet/ui-api/internal/domain/auth"
	apperrors "github.com/biblionet/ui-api/internal/errors"
	"github.com/biblionet/ui-api/internal/mocks"
	authmocks "github.com/biblionet/ui-api/internal/mocks/auth"
	"github.com/biblionet/ui-api/internal/ports"
)

func newTestSessionManager(gateway ports.AuthGateway, store ports.CredentialStore) *SessionManager {
	return NewSessionManager(SessionManagerOptions{
		Gateway: gateway,
		Store:   store,
		Logger:  slog.New(slog.DiscardHandler),
	})
}

func storedProfile(t *testing.T, p domainauth.Profile) string {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return string(raw)
}

func TestSessionManager_Login_PersistsGrant(t *testing.T) {
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	ctx := context.Background()
	session, err := manager.Login(ctx, "sid-1", domainauth.Credentials{
		Email:    "admin@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "mock-token-1", session.Token)
	require.NotNil(t, session.Profile)
	assert.Equal(t, domainauth.RoleAdmin, session.Profile.Role)

	token, ok, err := store.Get(ctx, "sid-1", ports.CredKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mock-token-1", token)

	raw, ok, err := store.Get(ctx, "sid-1", ports.CredKeyUser)
	require.NoError(t, err)
	assert.True(t, ok)

	var profile domainauth.Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &profile))
	assert.Equal(t, gateway.DefaultGrant.Profile, profile)
}

func TestSessionManager_Login_ValidatesInput(t *testing.T) {
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	ctx := context.Background()

	_, err := manager.Login(ctx, "", domainauth.Credentials{Email: "a@b.c", Password: "x"})
	require.Error(t, err)

	_, err = manager.Login(ctx, "sid-1", domainauth.Credentials{Password: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))

	_, err = manager.Login(ctx, "sid-1", domainauth.Credentials{Email: "a@b.c"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password", apperrors.GetField(err))

	assert.Empty(t, gateway.Calls)
	assert.Equal(t, 0, store.Len())
}

func TestSessionManager_Login_RejectedLeavesStoreEmpty(t *testing.T) {
	gateway := authmocks.RejectingGateway(401, "credenciales incorrectas")
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	session, err := manager.Login(context.Background(), "sid-1", domainauth.Credentials{
		Email:    "reader@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsAuthRejected(err))
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, 0, store.Len())
}

func TestSessionManager_Login_StoreFailure(t *testing.T) {
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	store.FailSetPair = errors.New("redis down")
	manager := newTestSessionManager(gateway, store)

	_, err := manager.Login(context.Background(), "sid-1", domainauth.Credentials{
		Email:    "admin@example.com",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist credentials")
	assert.Equal(t, 0, store.Len())
}

func TestSessionManager_Login_CoalescesConcurrentLogins(t *testing.T) {
	release := make(chan struct{})
	gateway := authmocks.NewMockAuthGateway()
	gateway.LoginFunc = func(_ context.Context, _ domainauth.Credentials) (domainauth.Grant, error) {
		<-release
		return gateway.DefaultGrant, nil
	}
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	const workers = 8
	var wg sync.WaitGroup
	sessions := make([]domainauth.Session, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i], errs[i] = manager.Login(context.Background(), "sid-1", domainauth.Credentials{
				Email:    "admin@example.com",
				Password: "secret",
			})
		}(i)
	}

	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "mock-token-1", sessions[i].Token)
	}
	// All callers for the same browser session share one backend call most of
	// the time. The count can exceed one if a goroutine starts after an
	// earlier flight finished, but it must never reach the worker count.
	assert.Less(t, len(gateway.Calls), workers)
}

func TestSessionManager_Hydrate_RoundTrip(t *testing.T) {
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	ctx := context.Background()
	logged, err := manager.Login(ctx, "sid-1", domainauth.Credentials{
		Email:    "admin@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	hydrated, err := manager.Hydrate(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, logged, hydrated)
}

func TestSessionManager_Hydrate_EmptySID(t *testing.T) {
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), authmocks.NewMemoryCredentialStore())

	session, err := manager.Hydrate(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSessionManager_Hydrate_NoCredentials(t *testing.T) {
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), authmocks.NewMemoryCredentialStore())

	session, err := manager.Hydrate(context.Background(), "sid-unknown")

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSessionManager_Hydrate_TokenWithoutProfile(t *testing.T) {
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyToken, "tok-1"))

	session, err := manager.Hydrate(ctx, "sid-1")

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())

	// The orphan token stays in the store.
	_, ok, err := store.Get(ctx, "sid-1", ports.CredKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSessionManager_Hydrate_UndefinedValues(t *testing.T) {
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyToken, "undefined"))
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyUser, "undefined"))

	session, err := manager.Hydrate(ctx, "sid-1")

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSessionManager_Hydrate_CorruptProfile(t *testing.T) {
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyToken, "tok-1"))
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyUser, "{not json"))

	session, err := manager.Hydrate(ctx, "sid-1")

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())

	// Corrupt values are not deleted on read.
	raw, ok, err := store.Get(ctx, "sid-1", ports.CredKeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{not json", raw)
}

func TestSessionManager_Hydrate_UnknownRoleSurvivesDecode(t *testing.T) {
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	ctx := context.Background()
	profile := domainauth.Profile{ID: 7, DisplayName: "X", Email: "x@example.com", Role: "Superuser"}
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyToken, "tok-1"))
	require.NoError(t, store.Set(ctx, "sid-1", ports.CredKeyUser, storedProfile(t, profile)))

	session, err := manager.Hydrate(ctx, "sid-1")

	require.NoError(t, err)
	// Authenticated, but the unknown role grants nothing.
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, domainauth.Role(""), session.Role())
	assert.False(t, session.IsStaff())
	assert.False(t, session.IsReader())
}

func TestSessionManager_Hydrate_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCredentialStore(ctrl)
	store.EXPECT().
		Get(gomock.Any(), "sid-1", ports.CredKeyToken).
		Return("", false, errors.New("connection refused"))

	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	_, err := manager.Hydrate(context.Background(), "sid-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read token credential")
}

func TestSessionManager_Logout_RemovesBothCredentials(t *testing.T) {
	gateway := authmocks.NewMockAuthGateway()
	store := authmocks.NewMemoryCredentialStore()
	manager := newTestSessionManager(gateway, store)

	ctx := context.Background()
	_, err := manager.Login(ctx, "sid-1", domainauth.Credentials{
		Email:    "admin@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	require.NoError(t, manager.Logout(ctx, "sid-1"))
	assert.Equal(t, 0, store.Len())

	session, err := manager.Hydrate(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSessionManager_Logout_Idempotent(t *testing.T) {
	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), authmocks.NewMemoryCredentialStore())

	ctx := context.Background()
	require.NoError(t, manager.Logout(ctx, "sid-never-seen"))
	require.NoError(t, manager.Logout(ctx, ""))
}

func TestSessionManager_Logout_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCredentialStore(ctrl)
	store.EXPECT().
		Remove(gomock.Any(), "sid-1", ports.CredKeyToken, ports.CredKeyUser).
		Return(errors.New("connection refused"))

	manager := newTestSessionManager(authmocks.NewMockAuthGateway(), store)

	err := manager.Logout(context.Background(), "sid-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove credentials")
}
