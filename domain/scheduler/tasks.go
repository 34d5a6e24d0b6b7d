package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/pkg/logger"
)

// SessionSweepTask evicts idle visitor sessions and forgets rate-limit
// buckets that have refilled.
type SessionSweepTask struct {
	sessions *viewstate.Store
	limiter  *contact.RateLimiter
	log      *slog.Logger
	now      func() time.Time
}

// NewSessionSweepTask creates the sweep task.
func NewSessionSweepTask(sessions *viewstate.Store, limiter *contact.RateLimiter, log *slog.Logger) *SessionSweepTask {
	return &SessionSweepTask{
		sessions: sessions,
		limiter:  limiter,
		log:      log.With(logger.Scope("scheduler.session_sweep")),
		now:      time.Now,
	}
}

// Run performs one sweep.
func (t *SessionSweepTask) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := t.now()
	swept := t.sessions.Sweep(now)
	pruned := t.limiter.Prune(now)

	if swept > 0 || pruned > 0 {
		t.log.Info("session sweep completed",
			slog.Int("sessions_removed", swept),
			slog.Int("sessions_remaining", t.sessions.Len()),
			slog.Int("rate_buckets_pruned", pruned))
	}
	return nil
}
