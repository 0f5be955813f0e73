package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
// PasswordHash never leaves this package boundary: presenters map User to
// response DTOs that do not include it.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
