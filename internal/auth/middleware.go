package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/observability"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

const actorKey = "auth_actor"

// Middleware is the auth gate for the REST transport: it extracts the bearer
// token, resolves it to a permission level and attaches the resulting actor
// to the request before any handler runs.
type Middleware struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewMiddleware constructs the gate.
func NewMiddleware(resolver Resolver, logger *zap.Logger) *Middleware {
	return &Middleware{resolver: resolver, logger: logger}
}

// Handle enforces authentication for every route.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	logger := observability.RequestLogger(m.logger, uuid.NewString(), c.IP())
	logger.Info("request received",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)

	token, err := BearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		logger.Info("bad bearer")
		return apperrors.NewUnauthorized("Bad bearer.")
	}

	permission, err := m.resolver.Resolve(c.Context(), token)
	if err != nil {
		// transport failure and invalid credential collapse to the same
		// caller-facing rejection but are logged at different severities
		if errors.Is(err, ErrResolverUnavailable) {
			logger.Error("credential lookup failed", zap.Error(err))
		} else {
			logger.Warn("credential rejected")
		}
		return apperrors.NewUnauthorized("Bad bearer.")
	}

	logger.Info("authenticated", zap.String("level", string(permission)))
	c.Locals(actorKey, Actor{Permission: permission, Logger: logger})
	return c.Next()
}

// FromFiberContext retrieves the actor attached by Handle.
func FromFiberContext(c *fiber.Ctx) (Actor, bool) {
	actor, ok := c.Locals(actorKey).(Actor)
	return actor, ok
}

// BearerToken extracts the credential from an Authorization header value.
// Fewer than two space-separated segments is a malformed header.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("malformed authorization header")
	}
	return parts[1], nil
}
