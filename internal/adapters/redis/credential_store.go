package redis

// Package redis provides Redis-based adapters for the UI gateway.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/biblionet/ui-api/internal/ports"
)

// DefaultTTL approximates a browser-session lifetime. Keys are refreshed on
// every write, so an active session never expires mid-use.
const DefaultTTL = 12 * time.Hour

// CredentialStore is a Redis-based credential store for production use.
// Values are stored per browser-session ID under prefixed keys; both
// credential keys of one session share the same TTL.
type CredentialStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewCredentialStore creates a new Redis-based credential store.
func NewCredentialStore(client redis.UniversalClient) *CredentialStore {
	return NewCredentialStoreWithPrefix(client, "cred:")
}

// NewCredentialStoreWithPrefix creates a Redis credential store with a custom key prefix.
func NewCredentialStoreWithPrefix(client redis.UniversalClient, prefix string) *CredentialStore {
	return &CredentialStore{
		client: client,
		prefix: prefix,
		ttl:    DefaultTTL,
	}
}

// WithTTL overrides the session TTL. Non-positive values keep the default.
func (s *CredentialStore) WithTTL(ttl time.Duration) *CredentialStore {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

func (s *CredentialStore) key(sid, key string) string {
	return s.prefix + sid + ":" + key
}

// Get returns the stored value for key, with ok=false when absent.
func (s *CredentialStore) Get(ctx context.Context, sid, key string) (string, bool, error) {
	if sid == "" {
		return "", false, nil
	}

	val, err := s.client.Get(ctx, s.key(sid, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

// Set writes a single key with the session TTL.
func (s *CredentialStore) Set(ctx context.Context, sid, key, value string) error {
	if sid == "" {
		return errors.New("browser session ID cannot be empty")
	}
	return s.client.Set(ctx, s.key(sid, key), value, s.ttl).Err()
}

// SetPair writes the token and serialized profile in one transaction so a
// failed login can never leave a token without a profile behind.
func (s *CredentialStore) SetPair(ctx context.Context, sid, token, user string) error {
	if sid == "" {
		return errors.New("browser session ID cannot be empty")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(sid, ports.CredKeyToken), token, s.ttl)
	pipe.Set(ctx, s.key(sid, ports.CredKeyUser), user, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set pair: %w", err)
	}
	return nil
}

// Remove deletes the given keys. Removing absent keys is not an error.
func (s *CredentialStore) Remove(ctx context.Context, sid string, keys ...string) error {
	if sid == "" || len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, s.key(sid, k))
	}
	return s.client.Del(ctx, full...).Err()
}
