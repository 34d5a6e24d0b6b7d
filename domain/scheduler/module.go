package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/pkg/logger"
)

// Module provides scheduled housekeeping
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Sessions  *viewstate.Store
	Limiter   *contact.RateLimiter
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	if !p.Cfg.Scheduler.Enabled {
		p.Log.Info("scheduler disabled, skipping task registration")
		return nil
	}

	sweep := NewSessionSweepTask(p.Sessions, p.Limiter, p.Log)
	if err := p.Scheduler.AddIntervalTask("session_sweep", p.Cfg.Session.SweepInterval, sweep.Run); err != nil {
		p.Log.Error("failed to register session sweep task", logger.Error(err))
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle
func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler, cfg *config.Config) {
	if !cfg.Scheduler.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
