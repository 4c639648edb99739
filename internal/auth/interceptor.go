package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/spec-kit/worker-directory/internal/observability"
)

// UnaryInterceptor is the auth gate for the RPC transport. It mirrors the
// REST middleware: bearer token from the authorization metadata, resolved
// permission attached to the call context.
func UnaryInterceptor(resolver Resolver, base *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		logger := observability.RequestLogger(base, uuid.NewString(), peerAddr(ctx))
		logger.Info("request received", zap.String("method", info.FullMethod))

		token, err := BearerToken(authorizationFromMetadata(ctx))
		if err != nil {
			logger.Info("bad bearer")
			return nil, status.Error(codes.Unauthenticated, "Bad bearer.")
		}

		permission, err := resolver.Resolve(ctx, token)
		if err != nil {
			if errors.Is(err, ErrResolverUnavailable) {
				logger.Error("credential lookup failed", zap.Error(err))
			} else {
				logger.Warn("credential rejected")
			}
			return nil, status.Error(codes.Unauthenticated, "Bad bearer.")
		}

		logger.Info("authenticated", zap.String("level", string(permission)))
		ctx = WithActor(ctx, Actor{Permission: permission, Logger: logger})
		return handler(ctx, req)
	}
}

func authorizationFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}
