package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"stripe_books_bridge/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	live := entities.AccessToken{Value: "at-1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, c.Set(ctx, "k", live))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "at-1", got.Value)

	require.NoError(t, c.Set(ctx, "old", entities.AccessToken{Value: "at-0", ExpiresAt: time.Now().Add(-time.Second)}))
	_, ok, err = c.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok, "expired tokens are evicted on read")

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "deleted tokens are gone before expiry")
	require.NoError(t, c.Delete(ctx, "missing"))
}

// Runs against a real server only when TOKEN_CACHE_REDIS_ADDR is set.
func TestRedisTokenCache(t *testing.T) {
	addr := os.Getenv("TOKEN_CACHE_REDIS_ADDR")
	if addr == "" {
		t.Skip("TOKEN_CACHE_REDIS_ADDR not set")
	}
	ctx := context.Background()

	rdb, err := Connect(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewRedisTokenCache(rdb)
	key := "test:zoho:access_token:" + uuid.NewString()
	t.Cleanup(func() { rdb.Del(ctx, key) })

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, c.Set(ctx, key, entities.AccessToken{Value: "at-1", ExpiresAt: expires}))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "at-1", got.Value)
	assert.True(t, expires.Equal(got.ExpiresAt))

	ttl, err := rdb.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Hour-ExpirySkew)

	require.NoError(t, c.Delete(ctx, key))
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "deleted tokens are gone before expiry")

	shortKey := key + ":short"
	require.NoError(t, c.Set(ctx, shortKey, entities.AccessToken{Value: "at-2", ExpiresAt: time.Now().Add(30 * time.Second)}))
	_, ok, err = c.Get(ctx, shortKey)
	require.NoError(t, err)
	assert.False(t, ok, "tokens inside the skew window are not stored")
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := Connect(ctx, "127.0.0.1:1")
	assert.Error(t, err)
}
