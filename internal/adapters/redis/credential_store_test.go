package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblionet/ui-api/internal/ports"
	"github.com/biblionet/ui-api/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestCredentialStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "sid-1", ports.CredKeyToken, "T1")
	require.NoError(t, err)

	val, ok, err := store.Get(ctx, "sid-1", ports.CredKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "T1", val)
}

func TestCredentialStore_GetAbsent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "sid-missing", ports.CredKeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Empty sid reads as absent, not as an error.
	_, ok, err = store.Get(ctx, "", ports.CredKeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialStore_SetPairWritesBothKeys(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	err := store.SetPair(ctx, "sid-2", "T2", `{"id":1,"role":"Admin"}`)
	require.NoError(t, err)

	tok, ok, err := store.Get(ctx, "sid-2", ports.CredKeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "T2", tok)

	user, ok, err := store.Get(ctx, "sid-2", ports.CredKeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1,"role":"Admin"}`, user)
}

func TestCredentialStore_Remove(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	require.NoError(t, store.SetPair(ctx, "sid-3", "T3", "{}"))
	require.NoError(t, store.Remove(ctx, "sid-3", ports.CredKeyToken, ports.CredKeyUser))

	_, ok, err := store.Get(ctx, "sid-3", ports.CredKeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Get(ctx, "sid-3", ports.CredKeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing again is a no-op.
	require.NoError(t, store.Remove(ctx, "sid-3", ports.CredKeyToken, ports.CredKeyUser))
}

func TestCredentialStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client).WithTTL(100 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.SetPair(ctx, "sid-ttl", "T", "{}"))
	time.Sleep(200 * time.Millisecond)

	_, ok, err := store.Get(ctx, "sid-ttl", ports.CredKeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid-4", ports.CredKeyToken, "T4"))

	exists := client.Exists(ctx, "test-prefix:sid-4:token").Val()
	assert.Equal(t, int64(1), exists)
}

func TestCredentialStore_EmptySID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "", ports.CredKeyToken, "T")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser session ID cannot be empty")

	err = store.SetPair(ctx, "", "T", "{}")
	require.Error(t, err)
}
