package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebmorton/storefront/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisAttemptStore keeps one counter key per email with a TTL equal to the
// lockout window, refreshed on every failure. Expiry is delegated to Redis,
// which also makes the lockout state shared across processes.
type RedisAttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAttemptStore(client *redis.Client, ttl time.Duration) *RedisAttemptStore {
	return &RedisAttemptStore{client: client, ttl: ttl}
}

func (s *RedisAttemptStore) key(email string) string {
	return "lockout:" + email
}

func (s *RedisAttemptStore) Get(ctx context.Context, email string) (*models.AttemptRecord, error) {
	key := s.key(email)

	count, err := s.client.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attempt record: %w", err)
	}

	remaining, err := s.client.PTTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read attempt record ttl: %w", err)
	}
	if remaining < 0 {
		// Key exists without a TTL (shouldn't happen); treat as expired
		return nil, nil
	}

	// The TTL counts down from the full window, so the last failure happened
	// (ttl - remaining) ago.
	lastFailure := time.Now().Add(remaining - s.ttl)

	return &models.AttemptRecord{
		Email:         email,
		FailureCount:  count,
		LastFailureAt: lastFailure,
	}, nil
}

func (s *RedisAttemptStore) RecordFailure(ctx context.Context, email string, at time.Time) (int, error) {
	key := s.key(email)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.PExpire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record attempt failure: %w", err)
	}

	return int(incr.Val()), nil
}

func (s *RedisAttemptStore) Clear(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("failed to clear attempt record: %w", err)
	}
	return nil
}

// PurgeStale is a no-op; Redis removes expired keys itself.
func (s *RedisAttemptStore) PurgeStale(ctx context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}
