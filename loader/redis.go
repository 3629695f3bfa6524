package loader

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage is a Redis-backed Storage for server-side runtimes that share
// a persisted translation cache across processes.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds configuration for the Redis storage.
type RedisConfig struct {
	URL string // Redis connection URL (e.g., "redis://localhost:6379")
	TTL int    // physical expiry in seconds for stored entries (0 = keep forever)
}

// NewRedisStorage connects to Redis using the given configuration.
// Entries carry their own logical expiry; the Redis TTL only garbage-collects
// keys the loader stopped reading.
func NewRedisStorage(cfg RedisConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStorageFromClient(client, cfg.TTL), nil
}

// NewRedisStorageFromClient creates a RedisStorage from an existing client.
func NewRedisStorageFromClient(client *redis.Client, ttlSeconds int) *RedisStorage {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &RedisStorage{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the stored bytes for key.
func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores data under key.
func (s *RedisStorage) Set(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Delete removes key.
func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close closes the Redis connection.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

// Verify RedisStorage implements Storage
var _ Storage = (*RedisStorage)(nil)
