package events

import (
	"time"

	"github.com/spec-kit/worker-directory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventWorkerCreated EventType = "worker_created"
	EventWorkerUpdated EventType = "worker_updated"
	EventWorkerDeleted EventType = "worker_deleted"
)

// Event represents a domain event emitted by the service layer.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	WorkerID   string            `json:"worker_id"`
	Permission domain.Permission `json:"permission"`
	Timestamp  time.Time         `json:"timestamp"`
	Payload    interface{}       `json:"payload,omitempty"`
}

// WorkerCreatedPayload payload.
type WorkerCreatedPayload struct {
	CardID string `json:"card_id"`
	Email  string `json:"email"`
}

// WorkerUpdatedPayload payload.
type WorkerUpdatedPayload struct {
	Fields int `json:"fields"`
}
