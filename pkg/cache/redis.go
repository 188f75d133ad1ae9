package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key holding the snapshot when no key is configured.
const DefaultRedisKey = "pyregraph:cards"

// RedisStore keeps the snapshot under a single Redis key, which lets several
// machines share one card cache. A SET replaces the value atomically.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store that saves the snapshot under key.
// An empty key selects DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Key returns the Redis key holding the snapshot.
func (s *RedisStore) Key() string { return s.key }

// Load fetches the snapshot.
func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return data, err
}

// Save replaces the snapshot.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Clear deletes the snapshot key.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
