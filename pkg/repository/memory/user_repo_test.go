package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jameshwang7534/Family-Tree/pkg/auth"
)

func newUser(email string) auth.User {
	return auth.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		FirstName:    "A",
		LastName:     "B",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()
	u := newUser("a@x.com")

	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, auth.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, auth.ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("a@x.com")))
	require.ErrorIs(t, repo.Create(ctx, newUser("a@x.com")), auth.ErrEmailTaken)
	require.ErrorIs(t, repo.Create(ctx, newUser("A@X.COM")), auth.ErrEmailTaken)
}

func TestUserRepositoryConcurrentCreate(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Create(ctx, newUser(fmt.Sprintf("user%d@x.com", i)))
			// Same email from every goroutine: exactly one must win.
			errs <- repo.Create(ctx, newUser("shared@x.com"))
		}(i)
	}
	wg.Wait()
	close(errs)

	var taken int
	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, auth.ErrEmailTaken)
			taken++
		}
	}
	require.Equal(t, n-1, taken)

	for i := 0; i < n; i++ {
		_, err := repo.GetByEmail(ctx, fmt.Sprintf("user%d@x.com", i))
		require.NoError(t, err)
	}
}
