package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/api/dto"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/domain"
	"github.com/spec-kit/worker-directory/internal/events"
	"github.com/spec-kit/worker-directory/internal/repository"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

// fakeWorkerRepository is an in-memory stand-in for the Postgres store. It
// mirrors the store contract: unique email, zero-count delete misses, empty
// patch returning the unchanged record.
type fakeWorkerRepository struct {
	rows map[string]domain.Worker
	fail error
}

func newFakeRepo() *fakeWorkerRepository {
	return &fakeWorkerRepository{rows: make(map[string]domain.Worker)}
}

func (f *fakeWorkerRepository) Create(_ context.Context, _ *zap.Logger, worker *domain.Worker) error {
	if f.fail != nil {
		return f.fail
	}
	for _, existing := range f.rows {
		if existing.Email == worker.Email {
			return repository.ErrDuplicateEmail
		}
	}
	worker.ID = uuid.NewString()
	worker.CreatedAt = time.Now()
	worker.UpdatedAt = worker.CreatedAt
	f.rows[worker.ID] = *worker
	return nil
}

func (f *fakeWorkerRepository) GetByID(_ context.Context, _ *zap.Logger, id string) (*domain.Worker, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	w, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (f *fakeWorkerRepository) GetByCardID(_ context.Context, _ *zap.Logger, cardID string) (*domain.Worker, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for _, w := range f.rows {
		if w.CardID == cardID {
			copied := w
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeWorkerRepository) List(_ context.Context, _ *zap.Logger) ([]domain.Worker, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]domain.Worker, 0, len(f.rows))
	for _, w := range f.rows {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkerRepository) Update(_ context.Context, _ *zap.Logger, id string, patch domain.WorkerPatch) (*domain.Worker, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	w, ok := f.rows[id]
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
	if !patch.IsEmpty() {
		w.UpdatedAt = time.Now()
	}
	f.rows[id] = w
	return &w, nil
}

func (f *fakeWorkerRepository) Delete(_ context.Context, _ *zap.Logger, id string) (int64, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func adminActor() auth.Actor {
	return auth.Actor{Permission: domain.PermissionAdmin, Logger: zap.NewNop()}
}

func userActor() auth.Actor {
	return auth.Actor{Permission: domain.PermissionUser, Logger: zap.NewNop()}
}

func validCreateRequest() dto.CreateWorkerRequest {
	return dto.CreateWorkerRequest{
		CardID:    "CARD-001",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}
}

func httpStatusOf(t *testing.T, err error) int {
	t.Helper()
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	return de.HTTPStatus
}

func TestCreateRoundTrip(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	req := validCreateRequest()
	created, err := svc.Create(context.Background(), adminActor(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, req.CardID, created.CardID)
	assert.Equal(t, req.FirstName, created.FirstName)
	assert.Equal(t, req.LastName, created.LastName)
	assert.Equal(t, req.Email, created.Email)

	fetched, err := svc.GetByID(context.Background(), userActor(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, req.Email, fetched.Email)
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	_, err := svc.Create(context.Background(), userActor(), validCreateRequest())
	assert.Equal(t, http.StatusForbidden, httpStatusOf(t, err))
}

func TestCreateRejectsInvalidCandidate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWorkerService(repo, nil)

	req := validCreateRequest()
	req.Email = "jane@nodot"
	_, err := svc.Create(context.Background(), adminActor(), req)
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))
	assert.Empty(t, repo.rows, "store must not be touched on validation failure")
}

func TestCreateDuplicateEmailLeavesFirstIntact(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWorkerService(repo, nil)

	first, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.CardID = "CARD-002"
	_, err = svc.Create(context.Background(), adminActor(), dup)
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))

	kept, err := svc.GetByID(context.Background(), adminActor(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "CARD-001", kept.CardID)
	assert.Len(t, repo.rows, 1)
}

func TestGetByCardID(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	fetched, err := svc.GetByCardID(context.Background(), userActor(), "CARD-001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = svc.GetByCardID(context.Background(), userActor(), "CARD-404")
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))
}

func TestListRequiresAdminAndSurfacesStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWorkerService(repo, nil)

	_, err := svc.List(context.Background(), userActor())
	assert.Equal(t, http.StatusForbidden, httpStatusOf(t, err))

	repo.fail = errors.New("connection reset")
	_, err = svc.List(context.Background(), adminActor())
	assert.Equal(t, http.StatusInternalServerError, httpStatusOf(t, err))
}

func TestUpdateFiltersInvalidFields(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	badFirst := "ab"
	newLast := "Smith"
	badEmail := "not-an-email"
	updated, err := svc.UpdateByID(context.Background(), adminActor(), created.ID, dto.UpdateWorkerRequest{
		FirstName: &badFirst,
		LastName:  &newLast,
		Email:     &badEmail,
	})
	require.NoError(t, err)

	// invalid fields are dropped, valid ones applied
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "jane.doe@example.com", updated.Email)
}

func TestUpdateEmptyPatchReturnsUnchangedRecord(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateByID(context.Background(), adminActor(), created.ID, dto.UpdateWorkerRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateUnknownIDIsClientError(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	name := "Janet"
	_, err := svc.UpdateByID(context.Background(), adminActor(), uuid.NewString(), dto.UpdateWorkerRequest{FirstName: &name})
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))
}

func TestDeleteLifecycle(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), adminActor(), created.ID))

	// second delete hits zero rows: client error, not a fault
	err = svc.DeleteByID(context.Background(), adminActor(), created.ID)
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))

	_, err = svc.GetByID(context.Background(), userActor(), created.ID)
	assert.Equal(t, http.StatusBadRequest, httpStatusOf(t, err))
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc := NewWorkerService(newFakeRepo(), nil)

	err := svc.DeleteByID(context.Background(), userActor(), uuid.NewString())
	assert.Equal(t, http.StatusForbidden, httpStatusOf(t, err))
}

func TestLifecycleEventsPublished(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var seen []events.EventType
	for _, et := range []events.EventType{events.EventWorkerCreated, events.EventWorkerUpdated, events.EventWorkerDeleted} {
		eventType := et
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
	}

	svc := NewWorkerService(newFakeRepo(), dispatcher)
	created, err := svc.Create(context.Background(), adminActor(), validCreateRequest())
	require.NoError(t, err)

	name := "Janet"
	_, err = svc.UpdateByID(context.Background(), adminActor(), created.ID, dto.UpdateWorkerRequest{FirstName: &name})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), adminActor(), created.ID))

	assert.Equal(t, []events.EventType{
		events.EventWorkerCreated,
		events.EventWorkerUpdated,
		events.EventWorkerDeleted,
	}, seen)
}
