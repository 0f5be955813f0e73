package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                    { return c.name }
func (c stubChecker) Check(ctx context.Context) error { return c.err }

func TestReadyNoCheckers(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewService().Ready(context.Background()))
}

func TestReadyReportsFailingChecker(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	svc := NewService(
		stubChecker{name: "ok"},
		stubChecker{name: "postgres", err: boom},
	)

	err := svc.Ready(context.Background())
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "postgres")
}
