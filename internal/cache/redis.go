package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the code is not cached
var ErrCacheMiss = errors.New("cache miss")

const keyPrefix = "shortcode:"

// Cache stores resolved short codes. Mappings never change once written,
// so entries only need a TTL, not invalidation.
type Cache interface {
	Get(ctx context.Context, shortCode string) (string, error)
	Set(ctx context.Context, shortCode, longURL string) error
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(ctx context.Context, redisURL string, ttl time.Duration) (Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// If URL parsing fails, try as simple host:port
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{client: client, ttl: ttl}, nil
}

func cacheKey(shortCode string) string {
	return keyPrefix + shortCode
}

// Get returns the cached long URL or ErrCacheMiss
func (r *redisCache) Get(ctx context.Context, shortCode string) (string, error) {
	val, err := r.client.Get(ctx, cacheKey(shortCode)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores a mapping for the configured TTL
func (r *redisCache) Set(ctx context.Context, shortCode, longURL string) error {
	if err := r.client.Set(ctx, cacheKey(shortCode), longURL, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
