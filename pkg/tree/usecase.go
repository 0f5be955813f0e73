package tree

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates application logic for working with trees.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description, iconURL string) (Tree, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Tree, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Tree, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, name, description, iconURL string) (Tree, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tree{}, ErrValidation("name is required")
	}
	iconURL = strings.TrimSpace(iconURL)
	if iconURL == "" {
		iconURL = DefaultIconURL
	}
	now := time.Now().UTC()
	t := Tree{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		IconURL:     iconURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Tree{}, err
	}
	return t, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Tree, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID) ([]Tree, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
