package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/calebmorton/storefront/internal/models"
)

// MemoryAttemptStore tracks failed login attempts in process memory. All
// mutations happen under one mutex so concurrent failures for the same email
// never lose an increment. Suitable for single-process deployments; use the
// Postgres or Redis store when scaling horizontally.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	records map[string]*models.AttemptRecord
}

func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{
		records: make(map[string]*models.AttemptRecord),
	}
}

func (s *MemoryAttemptStore) Get(ctx context.Context, email string) (*models.AttemptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[email]
	if !ok {
		return nil, nil
	}

	// Return a copy so callers cannot mutate shared state
	cp := *rec
	return &cp, nil
}

func (s *MemoryAttemptStore) RecordFailure(ctx context.Context, email string, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[email]
	if !ok {
		rec = &models.AttemptRecord{Email: email}
		s.records[email] = rec
	}

	rec.FailureCount++
	rec.LastFailureAt = at
	return rec.FailureCount, nil
}

func (s *MemoryAttemptStore) Clear(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, email)
	return nil
}

func (s *MemoryAttemptStore) PurgeStale(ctx context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for email, rec := range s.records {
		if rec.LastFailureAt.Before(olderThan) {
			delete(s.records, email)
			purged++
		}
	}
	return purged, nil
}
