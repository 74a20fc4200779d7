// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/store"
)

// SessionSweeper periodically deletes expired sessions of every user. Login
// already purges the caller's own expired sessions; the sweeper covers users
// who never come back.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	// done is closed when the sweeping goroutine exits.
	done chan struct{}
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run sweeps once every interval until ctx is cancelled. A non-positive
// interval disables the sweeper.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("session sweeper disabled")
		close(s.done)
		return
	}

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("session sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep runs one purge. Failures are logged and retried on the next tick.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	ctx = s.logger.WithContext(ctx)

	purged, err := s.sessions.DeleteExpiredSessions(ctx, "", s.now().UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "*SessionSweeper.Sweep").Msg("error purging expired sessions")
		return 0
	}
	if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("expired sessions purged")
	}
	return purged
}

// Done is closed once Run has returned for good.
func (s *SessionSweeper) Done() <-chan struct{} {
	return s.done
}
