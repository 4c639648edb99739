package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/worker-directory/internal/domain"
)

type cachingResolver struct {
	inner  Resolver
	client *redis.Client
	ttl    time.Duration
}

// NewCachingResolver wraps a resolver with a short-lived Redis cache of
// token lookups. Cache failures fall through to the inner resolver; only
// positive results are cached so revoked tokens are re-checked on expiry.
func NewCachingResolver(inner Resolver, client *redis.Client, ttl time.Duration) Resolver {
	if client == nil || ttl <= 0 {
		return inner
	}
	return &cachingResolver{inner: inner, client: client, ttl: ttl}
}

func (r *cachingResolver) Resolve(ctx context.Context, token string) (domain.Permission, error) {
	key := cacheKey(token)
	if level, err := r.client.Get(ctx, key).Result(); err == nil {
		if perm, permErr := permissionFromLevel(level); permErr == nil {
			return perm, nil
		}
	}

	perm, err := r.inner.Resolve(ctx, token)
	if err != nil {
		return "", err
	}

	_ = r.client.Set(ctx, key, string(perm), r.ttl).Err()
	return perm, nil
}

// cacheKey hashes the token so raw credentials never land in Redis.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "creds:" + hex.EncodeToString(sum[:])
}
