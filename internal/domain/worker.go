package domain

import "time"

// Permission is the coarse access tier resolved from a bearer token.
type Permission string

const (
	PermissionAdmin Permission = "admin"
	PermissionUser  Permission = "user"
)

// CanMutate reports whether the permission allows state-changing operations.
func (p Permission) CanMutate() bool {
	return p == PermissionAdmin
}

// Worker is the domain model for a badge-holder record.
type Worker struct {
	ID        string
	CardID    string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerPatch captures a partial update; nil fields are left untouched.
type WorkerPatch struct {
	CardID    *string
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether the patch carries no fields.
func (p WorkerPatch) IsEmpty() bool {
	return p.CardID == nil && p.FirstName == nil && p.LastName == nil && p.Email == nil
}
