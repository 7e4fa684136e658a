package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calebmorton/storefront/internal/models"
)

// AttemptStore defines the backing store for failed-attempt records.
// RecordFailure must have atomic increment-or-create semantics so concurrent
// failures for the same email never lose an increment.
type AttemptStore interface {
	Get(ctx context.Context, email string) (*models.AttemptRecord, error)
	RecordFailure(ctx context.Context, email string, at time.Time) (int, error)
	Clear(ctx context.Context, email string) error
	PurgeStale(ctx context.Context, olderThan time.Time) (int64, error)
}

// LockoutConfig holds configuration for login lockout behavior
type LockoutConfig struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

// Decision is the outcome of a lockout check. When Allowed is false,
// RetryAfter holds the remaining lockout time rounded up to whole minutes.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// RetryAfterMinutes returns the lockout remainder in whole minutes.
func (d Decision) RetryAfterMinutes() int {
	return int(d.RetryAfter / time.Minute)
}

// LockoutService decides whether a login attempt for an email may proceed,
// based on consecutive failed attempts within the lockout window.
type LockoutService struct {
	store  AttemptStore
	config LockoutConfig
	logger *slog.Logger
}

func NewLockoutService(store AttemptStore, config LockoutConfig, logger *slog.Logger) *LockoutService {
	return &LockoutService{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Check inspects the attempt record for email. Absent or stale records allow
// the attempt. A non-stale record at or above MaxAttempts locks it out.
// Store failures are infrastructure errors, never a lockout decision.
func (s *LockoutService) Check(ctx context.Context, email string, now time.Time) (Decision, error) {
	rec, err := s.store.Get(ctx, email)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read attempt record: %w", err)
	}

	if rec == nil || rec.Stale(now, s.config.LockoutDuration) {
		return Decision{Allowed: true}, nil
	}

	if rec.FailureCount >= s.config.MaxAttempts {
		remaining := s.config.LockoutDuration - now.Sub(rec.LastFailureAt)
		retryAfter := remaining.Truncate(time.Minute)
		if retryAfter < remaining {
			retryAfter += time.Minute
		}

		s.logger.Warn("login attempt locked out",
			slog.Int("failure_count", rec.FailureCount),
			slog.Duration("retry_after", retryAfter))

		return Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	return Decision{Allowed: true}, nil
}

// RecordFailure counts one more consecutive failure for email.
func (s *LockoutService) RecordFailure(ctx context.Context, email string, now time.Time) error {
	count, err := s.store.RecordFailure(ctx, email, now)
	if err != nil {
		return fmt.Errorf("failed to record attempt failure: %w", err)
	}

	if count >= s.config.MaxAttempts {
		s.logger.Warn("account reached lockout threshold", slog.Int("failure_count", count))
	}

	return nil
}

// RecordSuccess resets email to a clean state after successful authentication.
func (s *LockoutService) RecordSuccess(ctx context.Context, email string) error {
	if err := s.store.Clear(ctx, email); err != nil {
		return fmt.Errorf("failed to clear attempt record: %w", err)
	}
	return nil
}

// PurgeStale removes records older than the lockout window. Advisory
// housekeeping only; Check treats stale records as absent regardless.
func (s *LockoutService) PurgeStale(ctx context.Context, now time.Time) (int64, error) {
	return s.store.PurgeStale(ctx, now.Add(-s.config.LockoutDuration))
}
