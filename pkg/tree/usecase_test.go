package tree

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []Tree
}

func (f *fakeRepo) Create(ctx context.Context, t Tree) error {
	f.created = append(f.created, t)
	return nil
}

func (f *fakeRepo) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Tree, error) {
	for _, t := range f.created {
		if t.ID == id && t.UserID == ownerID {
			return t, nil
		}
	}
	return Tree{}, ErrNotFound
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Tree, error) {
	var out []Tree
	for _, t := range f.created {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestCreateDefaults(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)
	owner := uuid.New()

	tr, err := svc.Create(context.Background(), owner, "  Smith family  ", " origins ", "")
	require.NoError(t, err)
	require.Equal(t, "Smith family", tr.Name)
	require.Equal(t, "origins", tr.Description)
	require.Equal(t, DefaultIconURL, tr.IconURL)
	require.Equal(t, owner, tr.UserID)
	require.NotEqual(t, uuid.Nil, tr.ID)
	require.Equal(t, tr.CreatedAt, tr.UpdatedAt)
	require.Len(t, repo.created, 1)
}

func TestCreateRequiresName(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), uuid.New(), name, "", "")
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
	}
}

func TestCreateKeepsCustomIcon(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})

	tr, err := svc.Create(context.Background(), uuid.New(), "n", "", "https://icons.example/oak.svg")
	require.NoError(t, err)
	require.Equal(t, "https://icons.example/oak.svg", tr.IconURL)
}

func TestGetAndList(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)
	owner := uuid.New()

	tr, err := svc.Create(context.Background(), owner, "mine", "", "")
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), owner, tr.ID)
	require.NoError(t, err)
	require.Equal(t, tr.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New(), tr.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
