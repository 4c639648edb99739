package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/spec-kit/worker-directory/api/proto"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/domain"
	"github.com/spec-kit/worker-directory/internal/repository"
	"github.com/spec-kit/worker-directory/internal/service"
)

// stubRepo is a minimal in-memory record store for RPC transport tests.
type stubRepo struct {
	rows map[string]domain.Worker
}

func (m *stubRepo) Create(_ context.Context, _ *zap.Logger, w *domain.Worker) error {
	for _, existing := range m.rows {
		if existing.Email == w.Email {
			return repository.ErrDuplicateEmail
		}
	}
	w.ID = uuid.NewString()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	m.rows[w.ID] = *w
	return nil
}

func (m *stubRepo) GetByID(_ context.Context, _ *zap.Logger, id string) (*domain.Worker, error) {
	w, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (m *stubRepo) GetByCardID(_ context.Context, _ *zap.Logger, cardID string) (*domain.Worker, error) {
	for _, w := range m.rows {
		if w.CardID == cardID {
			copied := w
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *stubRepo) List(_ context.Context, _ *zap.Logger) ([]domain.Worker, error) {
	out := make([]domain.Worker, 0, len(m.rows))
	for _, w := range m.rows {
		out = append(out, w)
	}
	return out, nil
}

func (m *stubRepo) Update(_ context.Context, _ *zap.Logger, id string, patch domain.WorkerPatch) (*domain.Worker, error) {
	w, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.CardID != nil {
		w.CardID = *patch.CardID
	}
	if patch.FirstName != nil {
		w.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		w.LastName = *patch.LastName
	}
	if patch.Email != nil {
		w.Email = *patch.Email
	}
	m.rows[id] = w
	return &w, nil
}

func (m *stubRepo) Delete(_ context.Context, _ *zap.Logger, id string) (int64, error) {
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

func newTestServer() *WorkerServer {
	repo := &stubRepo{rows: make(map[string]domain.Worker)}
	svc := service.NewWorkerService(repo, nil)
	return NewWorkerServer(svc, zap.NewNop())
}

func adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		Permission: domain.PermissionAdmin,
		Logger:     zap.NewNop(),
	})
}

func userCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		Permission: domain.PermissionUser,
		Logger:     zap.NewNop(),
	})
}

func TestWorkerServerLifecycle(t *testing.T) {
	srv := newTestServer()

	created, err := srv.Create(adminCtx(), &pb.CreateReq{
		CardId:    "card-100",
		FirstName: "Nora",
		LastName:  "Whitfield",
		Email:     "nora@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created.GetData())
	assert.NotEmpty(t, created.GetData().GetId())
	assert.Equal(t, "card-100", created.GetData().GetCardId())

	id := created.GetData().GetId()

	byID, err := srv.GetById(userCtx(), &pb.GetByIdReq{Id: id})
	require.NoError(t, err)
	assert.Equal(t, "nora@example.com", byID.GetData().GetEmail())

	byCard, err := srv.GetByCardId(userCtx(), &pb.GetByCardIdReq{CardId: "card-100"})
	require.NoError(t, err)
	assert.Equal(t, id, byCard.GetData().GetId())

	updated, err := srv.UpdateById(adminCtx(), &pb.UpdateByIdReq{
		Id:        id,
		FirstName: "Eleanora",
	})
	require.NoError(t, err)
	assert.Equal(t, "Eleanora", updated.GetData().GetFirstName())
	assert.Equal(t, "Whitfield", updated.GetData().GetLastName())

	deleted, err := srv.DeleteById(adminCtx(), &pb.DeleteByIdReq{Id: id})
	require.NoError(t, err)
	assert.Equal(t, "Success", deleted.GetStatus())

	_, err = srv.GetById(userCtx(), &pb.GetByIdReq{Id: id})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWorkerServerPermissionMapping(t *testing.T) {
	srv := newTestServer()

	_, err := srv.Create(userCtx(), &pb.CreateReq{
		CardId:    "card-200",
		FirstName: "Jon",
		LastName:  "Mercer",
		Email:     "jon@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = srv.UpdateById(userCtx(), &pb.UpdateByIdReq{Id: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = srv.DeleteById(userCtx(), &pb.DeleteByIdReq{Id: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestWorkerServerValidationMapping(t *testing.T) {
	srv := newTestServer()

	_, err := srv.Create(adminCtx(), &pb.CreateReq{
		CardId:    "c",
		FirstName: "Nora",
		LastName:  "Whitfield",
		Email:     "not-an-email",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.DeleteById(adminCtx(), &pb.DeleteByIdReq{Id: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWorkerServerRejectsMissingActor(t *testing.T) {
	srv := newTestServer()

	_, err := srv.GetById(context.Background(), &pb.GetByIdReq{Id: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
