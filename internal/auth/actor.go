package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/domain"
)

// Actor bundles the request-scoped permission and diagnostic sink resolved by
// the auth gate. It is threaded explicitly through every handler call.
type Actor struct {
	Permission domain.Permission
	Logger     *zap.Logger
}

type actorContextKey struct{}

// WithActor attaches the actor to a context (used by the gRPC gate).
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext retrieves the actor attached by the gRPC gate.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}
