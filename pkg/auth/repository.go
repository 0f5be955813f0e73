package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingField       = errors.New("all fields are required")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
//
// Create must enforce email uniqueness atomically and return ErrEmailTaken
// on conflict; callers do not pre-check, so there is no check-then-act
// window between lookup and insert.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}
