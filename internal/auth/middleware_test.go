package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/domain"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

// mockResolver implements Resolver for testing.
type mockResolver struct {
	resolveFunc func(ctx context.Context, token string) (domain.Permission, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (domain.Permission, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, token)
	}
	return "", ErrInvalidCredential
}

func newGateApp(resolver Resolver) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"status": "Error", "message": de.Message})
		},
	})
	app.Use(NewMiddleware(resolver, zap.NewNop()).Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		actor, ok := FromFiberContext(c)
		if !ok {
			return errors.New("actor missing")
		}
		return c.JSON(fiber.Map{"level": string(actor.Permission)})
	})
	return app
}

func TestMiddlewareMissingHeader(t *testing.T) {
	app := newGateApp(&mockResolver{})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	app := newGateApp(&mockResolver{})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareInvalidCredential(t *testing.T) {
	app := newGateApp(&mockResolver{
		resolveFunc: func(context.Context, string) (domain.Permission, error) {
			return "", ErrInvalidCredential
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareResolverDown(t *testing.T) {
	app := newGateApp(&mockResolver{
		resolveFunc: func(context.Context, string) (domain.Permission, error) {
			return "", ErrResolverUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer tok")
	res, err := app.Test(req)
	require.NoError(t, err)
	// unreachable resolver is indistinguishable from a bad token for callers
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareAttachesActor(t *testing.T) {
	app := newGateApp(&mockResolver{
		resolveFunc: func(_ context.Context, token string) (domain.Permission, error) {
			assert.Equal(t, "tok-admin", token)
			return domain.PermissionAdmin, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer tok-admin")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
