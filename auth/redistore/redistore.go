// Package redistore provides a Redis-backed implementation of
// [auth.SessionStore], for deployments where session state must survive the
// process or be shared across instances.
//
// Values are JSON-encoded under "prefix + namespace + ':' + key", so writes
// are last-write-wins per key within a namespace, matching the
// [auth.SessionStore] contract.
package redistore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/henrystivens/go-kumbia-auth/auth"
)

var _ auth.SessionStore = (*Store)(nil)

// Config configures a [Store].
type Config struct {
	// Client is the Redis client instance. Required.
	Client *redis.Client

	// KeyPrefix is prepended to every Redis key.
	// Default: "auth:session:".
	KeyPrefix string

	// TTL is the lifetime applied to every written key. Zero means the
	// keys never expire; expiry is then the embedding application's
	// responsibility.
	TTL time.Duration
}

// ErrNilClient is returned by [New] when no Redis client is supplied.
var ErrNilClient = errors.New("redistore: redis client is required")

// Store implements [auth.SessionStore] on top of Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// New creates a Store from cfg.
func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "auth:session:"
	}
	return &Store{
		client:    cfg.Client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.TTL,
	}, nil
}

// Set JSON-encodes value and writes it under the namespaced key.
func (s *Store) Set(ctx context.Context, namespace, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redistore: marshal %s/%s: %w", namespace, key, err)
	}
	if err := s.client.Set(ctx, s.Key(namespace, key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redistore: set %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Get reads and decodes the value under the namespaced key into dest.
// Returns (false, nil) when the key does not exist.
func (s *Store) Get(ctx context.Context, namespace, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, s.Key(namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redistore: get %s/%s: %w", namespace, key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("redistore: unmarshal %s/%s: %w", namespace, key, err)
	}
	return true, nil
}

// Delete removes the value under the namespaced key. Deleting an absent key
// is not an error.
func (s *Store) Delete(ctx context.Context, namespace, key string) error {
	if err := s.client.Del(ctx, s.Key(namespace, key)).Err(); err != nil {
		return fmt.Errorf("redistore: delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Key returns the Redis key a namespace/key pair is stored under:
// prefix + namespace + ":" + key.
func (s *Store) Key(namespace, key string) string {
	return s.keyPrefix + namespace + ":" + key
}
