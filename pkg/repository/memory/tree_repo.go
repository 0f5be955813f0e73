package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

// TreeRepository implements tree.Repository with an in-memory map.
type TreeRepository struct {
	mu    sync.RWMutex
	trees map[uuid.UUID]tree.Tree
}

func NewTreeRepository() *TreeRepository {
	return &TreeRepository{trees: make(map[uuid.UUID]tree.Tree)}
}

func (r *TreeRepository) Create(ctx context.Context, t tree.Tree) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees[t.ID] = t
	return nil
}

func (r *TreeRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (tree.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trees[id]
	if !ok || t.UserID != ownerID {
		// Not-owner reads as not-found so tree existence does not leak.
		return tree.Tree{}, tree.ErrNotFound
	}
	return t, nil
}

func (r *TreeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]tree.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]tree.Tree, 0)
	for _, t := range r.trees {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
