package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/calebmorton/storefront/internal/database"
	"github.com/calebmorton/storefront/internal/models"
	"github.com/jackc/pgx/v5"
)

// PostgresAttemptStore keeps one row per email in login_attempts. The upsert
// in RecordFailure gives atomic increment-or-create semantics, so concurrent
// failures for the same email are all counted.
type PostgresAttemptStore struct {
	db *database.DB
}

func NewPostgresAttemptStore(db *database.DB) *PostgresAttemptStore {
	return &PostgresAttemptStore{db: db}
}

func (s *PostgresAttemptStore) Get(ctx context.Context, email string) (*models.AttemptRecord, error) {
	query := `
		SELECT email, failure_count, last_failure_at
		FROM login_attempts WHERE email = $1
	`

	var rec models.AttemptRecord
	err := s.db.Pool.QueryRow(ctx, query, email).Scan(&rec.Email, &rec.FailureCount, &rec.LastFailureAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &rec, nil
}

func (s *PostgresAttemptStore) RecordFailure(ctx context.Context, email string, at time.Time) (int, error) {
	query := `
		INSERT INTO login_attempts (email, failure_count, last_failure_at)
		VALUES ($1, 1, $2)
		ON CONFLICT (email) DO UPDATE
		SET failure_count = login_attempts.failure_count + 1, last_failure_at = $2
		RETURNING failure_count
	`

	var count int
	if err := s.db.Pool.QueryRow(ctx, query, email, at).Scan(&count); err != nil {
		return 0, database.MapPostgresError(err)
	}
	return count, nil
}

func (s *PostgresAttemptStore) Clear(ctx context.Context, email string) error {
	query := `DELETE FROM login_attempts WHERE email = $1`
	_, err := s.db.Pool.Exec(ctx, query, email)
	return database.MapPostgresError(err)
}

func (s *PostgresAttemptStore) PurgeStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM login_attempts WHERE last_failure_at < $1`
	tag, err := s.db.Pool.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}
	return tag.RowsAffected(), nil
}
