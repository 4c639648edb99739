package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/worker-directory/internal/domain"
)

// countingResolver records how many times it was consulted.
type countingResolver struct {
	calls      int
	permission domain.Permission
	err        error
}

func (r *countingResolver) Resolve(_ context.Context, _ string) (domain.Permission, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return r.permission, nil
}

func TestCachingResolverDisabledReturnsInner(t *testing.T) {
	inner := &countingResolver{permission: domain.PermissionAdmin}

	assert.Equal(t, Resolver(inner), NewCachingResolver(inner, nil, time.Minute))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	defer client.Close()
	assert.Equal(t, Resolver(inner), NewCachingResolver(inner, client, 0))
}

func TestCachingResolverFallsThroughWhenCacheUnreachable(t *testing.T) {
	inner := &countingResolver{permission: domain.PermissionAdmin}
	// Nothing listens here; every cache operation fails and is ignored.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	resolver := NewCachingResolver(inner, client, time.Minute)

	perm, err := resolver.Resolve(context.Background(), "some-token")
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionAdmin, perm)
	assert.Equal(t, 1, inner.calls)

	// With the cache down nothing was stored, so the inner resolver is
	// consulted again.
	_, err = resolver.Resolve(context.Background(), "some-token")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingResolverPropagatesInnerError(t *testing.T) {
	inner := &countingResolver{err: ErrInvalidCredential}
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		ReadTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	resolver := NewCachingResolver(inner, client, time.Minute)

	_, err := resolver.Resolve(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestCacheKeyNeverContainsRawToken(t *testing.T) {
	key := cacheKey("super-secret-token")

	assert.True(t, strings.HasPrefix(key, "creds:"))
	assert.NotContains(t, key, "super-secret-token")
	assert.Equal(t, key, cacheKey("super-secret-token"))
	assert.NotEqual(t, key, cacheKey("another-token"))
}
