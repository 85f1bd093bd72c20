// Package cache provides the feed page cache. Invalidation bumps a version
// counter that is part of every key, so stale pages simply stop being read
// and expire on their own TTL.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "newsdesk:feed:"

// Redis is a go-redis backed feed cache.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis connects to redisURL and pings it.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisWithClient(client, ttl), nil
}

// NewRedisWithClient creates a cache from an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: defaultPrefix, ttl: ttl}
}

func (r *Redis) versionKey() string {
	return r.prefix + "version"
}

func (r *Redis) key(ctx context.Context, name string) (string, error) {
	v, err := r.client.Get(ctx, r.versionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("read feed version: %w", err)
	}
	return r.prefix + "v" + strconv.FormatInt(v, 10) + ":" + name, nil
}

// Get returns the cached payload for name and whether it was present.
func (r *Redis) Get(ctx context.Context, name string) ([]byte, bool, error) {
	key, err := r.key(ctx, name)
	if err != nil {
		return nil, false, err
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores data under name for the configured TTL.
func (r *Redis) Set(ctx context.Context, name string, data []byte) error {
	key, err := r.key(ctx, name)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Invalidate makes every previously cached page unreachable.
func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Incr(ctx, r.versionKey()).Err(); err != nil {
		return fmt.Errorf("bump feed version: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Noop is used when no Redis URL is configured: every Get misses.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte) error         { return nil }
func (Noop) Invalidate(context.Context) error                  { return nil }
func (Noop) Ping(context.Context) error                        { return nil }
func (Noop) Close() error                                      { return nil }
