package dto

import (
	"time"

	"github.com/spec-kit/worker-directory/internal/domain"
)

// CreateWorkerRequest payload.
type CreateWorkerRequest struct {
	CardID    string `json:"cardId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateWorkerRequest payload; every field is independently optional.
type UpdateWorkerRequest struct {
	CardID    *string `json:"cardId"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// WorkerResponse is the public shape of a worker, distinct from the
// snake_case storage representation.
type WorkerResponse struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Envelope is the uniform response wrapper.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// SuccessEnvelope wraps payload data for a successful response.
func SuccessEnvelope(data any) Envelope {
	return Envelope{Status: "Success", Data: data}
}

// ErrorEnvelope wraps a caller-facing failure message.
func ErrorEnvelope(message string) Envelope {
	return Envelope{Status: "Error", Message: message}
}

// FromDomain maps the storage representation to the public shape.
func FromDomain(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		CardID:    w.CardID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FromDomainList maps a slice of records to public shapes.
func FromDomainList(workers []domain.Worker) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, FromDomain(&workers[i]))
	}
	return out
}
