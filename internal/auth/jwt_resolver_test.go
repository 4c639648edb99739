package auth

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/worker-directory/internal/domain"
)

func signLevelToken(t *testing.T, secret, level string) string {
	t.Helper()
	claims := &levelClaims{
		Level: level,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTResolverAcceptsSignedLevel(t *testing.T) {
	resolver := NewJWTResolver("s3cret")

	perm, err := resolver.Resolve(context.Background(), signLevelToken(t, "s3cret", "user"))
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionUser, perm)
}

func TestJWTResolverRejectsWrongSecret(t *testing.T) {
	resolver := NewJWTResolver("s3cret")

	_, err := resolver.Resolve(context.Background(), signLevelToken(t, "other", "admin"))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTResolverRejectsUnknownLevel(t *testing.T) {
	resolver := NewJWTResolver("s3cret")

	_, err := resolver.Resolve(context.Background(), signLevelToken(t, "s3cret", "root"))
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTResolverRejectsGarbage(t *testing.T) {
	resolver := NewJWTResolver("s3cret")

	_, err := resolver.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestCachingResolverBypassedWithoutRedis(t *testing.T) {
	inner := NewJWTResolver("s3cret")
	assert.Equal(t, inner, NewCachingResolver(inner, nil, time.Minute))
	assert.Equal(t, inner, NewCachingResolver(inner, nil, 0))
}

func TestCacheKeyHidesToken(t *testing.T) {
	key := cacheKey("tok-123")
	assert.NotContains(t, key, "tok-123")
	assert.Equal(t, key, cacheKey("tok-123"))
	assert.NotEqual(t, key, cacheKey("tok-124"))
}
