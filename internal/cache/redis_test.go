package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T, ttl time.Duration) (Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), "redis://"+srv.Addr(), ttl)
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestCacheKey(t *testing.T) {
	if got := cacheKey("Ab3xY9"); got != "shortcode:Ab3xY9" {
		t.Errorf("cacheKey() = %s; want shortcode:Ab3xY9", got)
	}
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Hour)

	if err := c.Set(ctx, "Ab3xY9", "http://example.com"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get(ctx, "Ab3xY9")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "http://example.com" {
		t.Errorf("Get() = %s; want http://example.com", got)
	}

	// stored under the prefixed key with the configured TTL
	raw, err := srv.Get("shortcode:Ab3xY9")
	if err != nil || raw != "http://example.com" {
		t.Errorf("server value = %q, %v", raw, err)
	}
	if ttl := srv.TTL("shortcode:Ab3xY9"); ttl != time.Hour {
		t.Errorf("TTL = %v; want 1h", ttl)
	}
}

func TestGet_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	_, err := c.Get(context.Background(), "missing")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss, got: %v", err)
	}
}

func TestGet_ExpiredEntry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, time.Minute)

	if err := c.Set(ctx, "expire", "http://example.com"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	srv.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "expire")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss after TTL, got: %v", err)
	}
}

func TestGet_ServerDown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, srv := newTestCache(t, time.Hour)
	srv.Close()

	_, err := c.Get(ctx, "Ab3xY9")
	if err == nil {
		t.Fatal("Expected an error with the server down")
	}
	if errors.Is(err, ErrCacheMiss) {
		t.Error("A server failure must not be reported as a cache miss")
	}

	if err := c.Set(ctx, "Ab3xY9", "http://example.com"); err == nil {
		t.Error("Expected Set to fail with the server down")
	}
}

func TestNewRedisCache_HostPort(t *testing.T) {
	srv := miniredis.RunT(t)

	// a bare host:port is accepted as well as a redis:// URL
	c, err := NewRedisCache(context.Background(), srv.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("NewRedisCache(%s) failed: %v", srv.Addr(), err)
	}
	c.Close()
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// port 1 is never a redis server
	c, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0", time.Minute)
	if err == nil {
		c.Close()
		t.Fatal("Expected error connecting to an unreachable Redis")
	}
}
