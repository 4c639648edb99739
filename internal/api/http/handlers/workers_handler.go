package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/worker-directory/internal/api/dto"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/service"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

// WorkersHandler exposes worker CRUD over REST.
type WorkersHandler struct {
	workers *service.WorkerService
}

// NewWorkersHandler constructs handler.
func NewWorkersHandler(workerService *service.WorkerService) *WorkersHandler {
	return &WorkersHandler{workers: workerService}
}

func actorOf(c *fiber.Ctx) (auth.Actor, error) {
	actor, ok := auth.FromFiberContext(c)
	if !ok {
		return auth.Actor{}, apperrors.NewUnauthorized("Bad bearer.")
	}
	return actor, nil
}

// Create handles POST /worker/.
func (h *WorkersHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req dto.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		actor.Logger.Info("unparsable create body")
		return apperrors.NewValidationError("Invalid body.")
	}

	worker, err := h.workers.Create(c.UserContext(), actor, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.SuccessEnvelope(worker))
}

// GetByID handles GET /worker/:workerId.
func (h *WorkersHandler) GetByID(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	worker, err := h.workers.GetByID(c.UserContext(), actor, c.Params("workerId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessEnvelope(worker))
}

// GetByCardID handles GET /worker/card/:cardId.
func (h *WorkersHandler) GetByCardID(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	worker, err := h.workers.GetByCardID(c.UserContext(), actor, c.Params("cardId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessEnvelope(worker))
}

// List handles GET /worker/.
func (h *WorkersHandler) List(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	workers, err := h.workers.List(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessEnvelope(workers))
}

// UpdateByID handles PATCH /worker/:workerId.
func (h *WorkersHandler) UpdateByID(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req dto.UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		actor.Logger.Info("unparsable update body")
		return apperrors.NewValidationError("Invalid body.")
	}

	worker, err := h.workers.UpdateByID(c.UserContext(), actor, c.Params("workerId"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessEnvelope(worker))
}

// DeleteByID handles DELETE /worker/:workerId.
func (h *WorkersHandler) DeleteByID(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	if err := h.workers.DeleteByID(c.UserContext(), actor, c.Params("workerId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
