package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/api/dto"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/domain"
	"github.com/spec-kit/worker-directory/internal/events"
	"github.com/spec-kit/worker-directory/internal/repository"
	"github.com/spec-kit/worker-directory/internal/validation"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

// WorkerService implements the per-operation template shared by both
// transports: authorize, validate, hit the record store, map to the public
// shape. Store-level detail never crosses the service boundary.
type WorkerService struct {
	workers    repository.WorkerRepository
	dispatcher events.Dispatcher
}

// NewWorkerService constructs the service.
func NewWorkerService(workers repository.WorkerRepository, dispatcher events.Dispatcher) *WorkerService {
	return &WorkerService{workers: workers, dispatcher: dispatcher}
}

func requireAdmin(actor auth.Actor) error {
	if !actor.Permission.CanMutate() {
		actor.Logger.Warn("insufficient permission", zap.String("level", string(actor.Permission)))
		return apperrors.NewForbidden("Insufficient permission.")
	}
	return nil
}

// Create registers a new worker. Admin only; all four business fields must
// pass validation before the store is touched.
func (s *WorkerService) Create(ctx context.Context, actor auth.Actor, req dto.CreateWorkerRequest) (dto.WorkerResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return dto.WorkerResponse{}, err
	}

	candidate := validation.WorkerCandidate{
		CardID:    req.CardID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if !validation.IsValidWorker(candidate) {
		actor.Logger.Info("invalid create payload")
		return dto.WorkerResponse{}, apperrors.NewValidationError("Invalid body.")
	}

	worker := &domain.Worker{
		CardID:    req.CardID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.workers.Create(ctx, actor.Logger, worker); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			actor.Logger.Warn("duplicate email on create")
			return dto.WorkerResponse{}, apperrors.NewConflict("Invalid body.")
		}
		actor.Logger.Warn("create failed", zap.Error(err))
		return dto.WorkerResponse{}, apperrors.NewValidationError("Invalid body.")
	}

	s.publish(ctx, actor, events.EventWorkerCreated, worker.ID, events.WorkerCreatedPayload{
		CardID: worker.CardID,
		Email:  worker.Email,
	})
	return dto.FromDomain(worker), nil
}

// GetByID fetches a worker by primary key. Any authenticated caller.
func (s *WorkerService) GetByID(ctx context.Context, actor auth.Actor, id string) (dto.WorkerResponse, error) {
	if id == "" {
		return dto.WorkerResponse{}, apperrors.NewValidationError("Invalid request.")
	}

	worker, err := s.workers.GetByID(ctx, actor.Logger, id)
	if err != nil {
		return dto.WorkerResponse{}, s.lookupError(actor, err)
	}
	return dto.FromDomain(worker), nil
}

// GetByCardID fetches a worker by badge card. Any authenticated caller.
func (s *WorkerService) GetByCardID(ctx context.Context, actor auth.Actor, cardID string) (dto.WorkerResponse, error) {
	if cardID == "" {
		return dto.WorkerResponse{}, apperrors.NewValidationError("Invalid request.")
	}

	worker, err := s.workers.GetByCardID(ctx, actor.Logger, cardID)
	if err != nil {
		return dto.WorkerResponse{}, s.lookupError(actor, err)
	}
	return dto.FromDomain(worker), nil
}

// List returns every worker. Admin only; the table is expected to stay small
// so there is no pagination.
func (s *WorkerService) List(ctx context.Context, actor auth.Actor) ([]dto.WorkerResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	workers, err := s.workers.List(ctx, actor.Logger)
	if err != nil {
		actor.Logger.Error("list failed", zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	actor.Logger.Info("listed workers", zap.Int("count", len(workers)))
	return dto.FromDomainList(workers), nil
}

// UpdateByID applies a partial update. Admin only; empty or invalid fields
// are filtered out before persistence rather than rejected.
func (s *WorkerService) UpdateByID(ctx context.Context, actor auth.Actor, id string, req dto.UpdateWorkerRequest) (dto.WorkerResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return dto.WorkerResponse{}, err
	}
	if id == "" {
		return dto.WorkerResponse{}, apperrors.NewValidationError("Invalid request.")
	}

	patch := buildPatch(req)
	worker, err := s.workers.Update(ctx, actor.Logger, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			actor.Logger.Warn("duplicate email on update")
			return dto.WorkerResponse{}, apperrors.NewConflict("Invalid body.")
		}
		return dto.WorkerResponse{}, s.lookupError(actor, err)
	}

	s.publish(ctx, actor, events.EventWorkerUpdated, worker.ID, events.WorkerUpdatedPayload{
		Fields: patchSize(patch),
	})
	return dto.FromDomain(worker), nil
}

// DeleteByID removes a worker. Admin only; zero rows affected is a client
// error, not a fault.
func (s *WorkerService) DeleteByID(ctx context.Context, actor auth.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == "" {
		return apperrors.NewValidationError("Invalid request.")
	}

	deleted, err := s.workers.Delete(ctx, actor.Logger, id)
	if err != nil {
		actor.Logger.Warn("delete failed", zap.Error(err))
		return apperrors.NewValidationError("Invalid request.")
	}
	if deleted == 0 {
		actor.Logger.Info("no worker deleted", zap.String("worker_id", id))
		return apperrors.NewNotFound("worker")
	}

	s.publish(ctx, actor, events.EventWorkerDeleted, id, nil)
	return nil
}

// lookupError downgrades store failures to the client-error class; full
// detail goes to the diagnostic sink only.
func (s *WorkerService) lookupError(actor auth.Actor, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		actor.Logger.Info("no worker found")
		return apperrors.NewNotFound("worker")
	}
	actor.Logger.Warn("store failure", zap.Error(err))
	return apperrors.NewValidationError("Invalid request.")
}

func (s *WorkerService) publish(ctx context.Context, actor auth.Actor, eventType events.EventType, workerID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		WorkerID:   workerID,
		Permission: actor.Permission,
		Timestamp:  time.Now(),
		Payload:    payload,
	})
}

// buildPatch keeps only the request fields that pass validation.
func buildPatch(req dto.UpdateWorkerRequest) domain.WorkerPatch {
	var patch domain.WorkerPatch
	if req.CardID != nil && validation.IsValidProperty(*req.CardID) {
		patch.CardID = req.CardID
	}
	if req.FirstName != nil && validation.IsValidProperty(*req.FirstName) {
		patch.FirstName = req.FirstName
	}
	if req.LastName != nil && validation.IsValidProperty(*req.LastName) {
		patch.LastName = req.LastName
	}
	if req.Email != nil && validation.IsValidEmail(*req.Email) {
		patch.Email = req.Email
	}
	return patch
}

func patchSize(patch domain.WorkerPatch) int {
	count := 0
	for _, set := range []bool{
		patch.CardID != nil,
		patch.FirstName != nil,
		patch.LastName != nil,
		patch.Email != nil,
	} {
		if set {
			count++
		}
	}
	return count
}
