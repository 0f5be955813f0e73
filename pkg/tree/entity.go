package tree

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultIconURL is used when a tree is created without an icon.
const DefaultIconURL = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 24 24' fill='%23667eea'%3E%3Cpath d='M12 2C8 2 6 5 6 8c0 2 1 3 2 4H4v2h3l-1 6h3v-4h4v4h3l-1-6h3v-2h-4c1-1 2-2 2-4 0-3-2-6-6-6z'/%3E%3C/svg%3E"

var ErrNotFound = errors.New("tree not found")

// Tree is a family tree owned by a single user.
type Tree struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	IconURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository is the persistence port for trees. Lookups are owner-scoped:
// a tree owned by someone else is reported exactly like an absent one.
type Repository interface {
	Create(ctx context.Context, t Tree) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Tree, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tree, error)
}
