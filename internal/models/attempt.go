package models

import "time"

// AttemptRecord tracks consecutive failed login attempts for one email.
// A record is only meaningful while now - LastFailureAt < lockout duration;
// older records are treated as absent even if still stored.
type AttemptRecord struct {
	Email         string
	FailureCount  int
	LastFailureAt time.Time
}

// Stale reports whether the record has aged past the lockout window.
func (r *AttemptRecord) Stale(now time.Time, lockoutDuration time.Duration) bool {
	return now.Sub(r.LastFailureAt) >= lockoutDuration
}
