package background

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/calebmorton/storefront/internal/repositories"
	"github.com/calebmorton/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLockout(store services.AttemptStore) *services.LockoutService {
	return services.NewLockoutService(store, services.LockoutConfig{
		MaxAttempts:     5,
		LockoutDuration: 15 * time.Minute,
	}, testLogger())
}

func TestSweeper_SweepPurgesOnlyStaleRecords(t *testing.T) {
	store := repositories.NewMemoryAttemptStore()
	sweeper := NewSweeper(newTestLockout(store), time.Minute, testLogger())
	ctx := context.Background()

	_, err := store.RecordFailure(ctx, "old@example.com", time.Now().Add(-20*time.Minute))
	require.NoError(t, err)
	_, err = store.RecordFailure(ctx, "recent@example.com", time.Now())
	require.NoError(t, err)

	sweeper.sweep()

	rec, err := store.Get(ctx, "old@example.com")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = store.Get(ctx, "recent@example.com")
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestSweeper_StopWaitsForLoopExit(t *testing.T) {
	store := repositories.NewMemoryAttemptStore()
	sweeper := NewSweeper(newTestLockout(store), 5*time.Millisecond, testLogger())

	sweeper.Start()
	time.Sleep(20 * time.Millisecond)
	sweeper.Stop()

	select {
	case <-sweeper.done:
	default:
		t.Fatal("Stop returned before the sweep loop exited")
	}
}
