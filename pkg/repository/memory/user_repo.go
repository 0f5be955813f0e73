// Package memory provides process-local repository implementations. Records
// live for the lifetime of the process and are lost on restart; the durable
// pgx-backed repositories in pkg/repository/postgres are drop-in
// replacements behind the same ports.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jameshwang7534/Family-Tree/pkg/auth"
)

// UserRepository implements auth.UserRepository with an in-memory map.
// All access goes through one RWMutex, so concurrent registrations of the
// same email race safely: one wins, the other gets ErrEmailTaken.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]auth.User
	byEmail map[string]uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]auth.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	key := emailKey(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return auth.ErrEmailTaken
	}
	r.byEmail[key] = user.ID
	r.byID[user.ID] = user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
