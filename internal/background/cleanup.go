package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/calebmorton/storefront/internal/services"
)

// Sweeper periodically purges stale login-attempt records so abandoned
// counters do not accumulate in the attempt store. Expiry itself is passive
// (checked on read); the sweep only reclaims storage.
type Sweeper struct {
	lockout  *services.LockoutService
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
}

func NewSweeper(lockout *services.LockoutService, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		lockout:  lockout,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop in a goroutine. Call Stop to shut it down.
func (s *Sweeper) Start() {
	go s.run()
	s.logger.Info("attempt sweeper started", slog.String("interval", s.interval.String()))
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.lockout.PurgeStale(ctx, time.Now())
	if err != nil {
		s.logger.Error("attempt sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("purged stale login attempts", slog.Int64("removed", removed))
	}
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
	s.logger.Info("attempt sweeper stopped")
}
