// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces counter keys
const DefaultRedisPrefix = "college:counter:"

// RedisStore keeps counters as Redis integer strings.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedis returns a Store on client. Keys are stored as prefix+key.
func NewRedis(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis parses a redis:// URL and pings the server.
func DialRedis(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (s *RedisStore) GetOrCreate(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	// MULTI/EXEC keeps SETNX and GET one atomic step
	pipe := s.client.TxPipeline()
	pipe.SetNX(ctx, s.prefix+key, 0, 0)
	current := pipe.Get(ctx, s.prefix+key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, unavailable("get or create", key, err)
	}
	count, err := current.Int64()
	if err != nil {
		return 0, unavailable("get or create", key, err)
	}
	return count, nil
}

func (s *RedisStore) Increment(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	count, err := s.client.Incr(ctx, s.prefix+key).Result()
	if err != nil {
		return 0, unavailable("increment", key, err)
	}
	return count, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
