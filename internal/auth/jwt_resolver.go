package auth

import (
	"context"
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/worker-directory/internal/domain"
)

// levelClaims carries the permission level inside a locally signed token.
type levelClaims struct {
	Level string `json:"level"`
	jwt.RegisteredClaims
}

type jwtResolver struct {
	secret []byte
}

// NewJWTResolver validates HMAC-signed tokens locally, for deployments
// without a credential service.
func NewJWTResolver(secret string) Resolver {
	return &jwtResolver{secret: []byte(secret)}
}

func (r *jwtResolver) Resolve(_ context.Context, token string) (domain.Permission, error) {
	parsed, err := jwt.ParseWithClaims(token, &levelClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil {
		return "", ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*levelClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidCredential
	}
	return permissionFromLevel(claims.Level)
}
