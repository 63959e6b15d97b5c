package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"
)

const (
	tokenCacheKeyPrefix = "zoho:access_token:"
	tokenExpirySkew     = time.Minute
)

// CachedTokenProvider reuses an access token until shortly before it expires.
// Cache failures are logged and fall through to a fresh exchange.
type CachedTokenProvider struct {
	inner interfaces.ITokenProvider
	cache interfaces.ITokenCache
	now   func() time.Time
}

var _ interfaces.ITokenProvider = (*CachedTokenProvider)(nil)

func NewCachedTokenProvider(inner interfaces.ITokenProvider, cache interfaces.ITokenCache) *CachedTokenProvider {
	return &CachedTokenProvider{inner: inner, cache: cache, now: time.Now}
}

func (p *CachedTokenProvider) Refresh(ctx context.Context, creds entities.OAuthCredentials) (entities.AccessToken, error) {
	key := TokenCacheKey(creds)

	cached, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[reconcile][token] cache read failed err=%v", err)
	} else if ok && cached.Value != "" && cached.ExpiresAt.After(p.now().Add(tokenExpirySkew)) {
		return cached, nil
	}

	tok, err := p.inner.Refresh(ctx, creds)
	if err != nil {
		return entities.AccessToken{}, err
	}
	if !tok.ExpiresAt.IsZero() {
		if err := p.cache.Set(ctx, key, tok); err != nil {
			log.Printf("[reconcile][token] cache write failed err=%v", err)
		}
	}
	return tok, nil
}

// Invalidate drops the cached token for creds. Callers use it once the
// accounting API has refused that token.
func (p *CachedTokenProvider) Invalidate(ctx context.Context, creds entities.OAuthCredentials) error {
	if err := p.cache.Delete(ctx, TokenCacheKey(creds)); err != nil {
		return err
	}
	return p.inner.Invalidate(ctx, creds)
}

// TokenCacheKey derives a cache key that does not expose the refresh token.
func TokenCacheKey(creds entities.OAuthCredentials) string {
	h := sha256.New()
	for _, part := range []string{creds.Zone, creds.ClientID, creds.RefreshToken} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return tokenCacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
