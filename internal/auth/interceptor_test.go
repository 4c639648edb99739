package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/spec-kit/worker-directory/internal/domain"
)

func invokeInterceptor(t *testing.T, resolver Resolver, md metadata.MD) (interface{}, error) {
	t.Helper()
	interceptor := UnaryInterceptor(resolver, zap.NewNop())
	ctx := context.Background()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/worker.WorkerAPI/GetById"}
	return interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		actor, ok := ActorFromContext(ctx)
		require.True(t, ok)
		return actor.Permission, nil
	})
}

func TestUnaryInterceptorMissingMetadata(t *testing.T) {
	_, err := invokeInterceptor(t, &mockResolver{}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestUnaryInterceptorRejectsInvalidToken(t *testing.T) {
	md := metadata.Pairs("authorization", "Bearer bad")
	_, err := invokeInterceptor(t, &mockResolver{}, md)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestUnaryInterceptorAttachesActor(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(context.Context, string) (domain.Permission, error) {
			return domain.PermissionUser, nil
		},
	}
	md := metadata.Pairs("authorization", "Bearer tok")
	got, err := invokeInterceptor(t, resolver, md)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionUser, got)
}
