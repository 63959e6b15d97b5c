package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// ExpirySkew is subtracted from a token lifetime when choosing the cache TTL.
const ExpirySkew = time.Minute

type cachedToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisTokenCache stores access tokens in Redis so several bridge instances
// share one token per Zoho credential.
type RedisTokenCache struct {
	rdb redis.Cmdable
}

var _ interfaces.ITokenCache = (*RedisTokenCache)(nil)

func NewRedisTokenCache(rdb redis.Cmdable) *RedisTokenCache {
	return &RedisTokenCache{rdb: rdb}
}

// Connect opens a client for addr and checks it answers PING.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	log.Printf("[cache][redis] connected addr=%s", addr)
	return rdb, nil
}

func (c *RedisTokenCache) Get(ctx context.Context, key string) (entities.AccessToken, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.AccessToken{}, false, nil
	}
	if err != nil {
		return entities.AccessToken{}, false, err
	}

	var ct cachedToken
	if err := json.Unmarshal(raw, &ct); err != nil {
		return entities.AccessToken{}, false, fmt.Errorf("decode cached token: %w", err)
	}
	return entities.AccessToken{Value: ct.Value, ExpiresAt: ct.ExpiresAt}, true, nil
}

// Set is a no-op for tokens that expire within ExpirySkew.
func (c *RedisTokenCache) Set(ctx context.Context, key string, token entities.AccessToken) error {
	ttl := time.Until(token.ExpiresAt) - ExpirySkew
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(cachedToken{Value: token.Value, ExpiresAt: token.ExpiresAt})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

func (c *RedisTokenCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// MemoryTokenCache is the single-instance fallback used when no Redis address
// is configured.
type MemoryTokenCache struct {
	mu     sync.Mutex
	tokens map[string]entities.AccessToken
}

var _ interfaces.ITokenCache = (*MemoryTokenCache)(nil)

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{tokens: map[string]entities.AccessToken{}}
}

func (c *MemoryTokenCache) Get(_ context.Context, key string) (entities.AccessToken, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tok, ok := c.tokens[key]
	if ok && !tok.ExpiresAt.After(time.Now()) {
		delete(c.tokens, key)
		return entities.AccessToken{}, false, nil
	}
	return tok, ok, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, key string, token entities.AccessToken) error {
	c.mu.Lock()
	c.tokens[key] = token
	c.mu.Unlock()
	return nil
}

func (c *MemoryTokenCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.tokens, key)
	c.mu.Unlock()
	return nil
}
