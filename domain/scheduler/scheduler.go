package scheduler

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wutian475-collab/wutian111/pkg/logger"
)

// TaskFunc is one run of a scheduled task.
type TaskFunc func(ctx context.Context) error

// task is a registered job plus the outcome of its runs.
type task struct {
	entryID  cron.EntryID
	interval time.Duration
	fn       TaskFunc

	runs         int
	failures     int
	lastRun      time.Time
	lastDuration time.Duration
	lastErr      error
}

// Scheduler runs housekeeping jobs at fixed intervals. A job that is still
// running when its next tick arrives is skipped rather than overlapped.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	tasks   map[string]*task
	running bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log:     log.With(logger.Scope("scheduler")),
		timeout: time.Minute,
		tasks:   make(map[string]*task),
	}
}

// Start begins running registered tasks.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
	return nil
}

// Stop waits for in-flight tasks to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	// Not under mu: finishing tasks record their outcome through it.
	select {
	case <-s.cron.Stop().Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out with tasks still running")
	}
	return nil
}

// AddIntervalTask registers fn to run every interval, replacing any task
// with the same name.
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, fn TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.tasks[name]; ok {
		s.cron.Remove(old.entryID)
		delete(s.tasks, name)
	}

	t := &task{interval: interval, fn: fn}
	id, err := s.cron.AddFunc("@every "+interval.String(), func() { _ = s.run(name, t) })
	if err != nil {
		return err
	}
	t.entryID = id
	s.tasks[name] = t

	s.log.Info("added interval task",
		slog.String("name", name),
		slog.Duration("interval", interval))
	return nil
}

// RemoveTask unregisters a task. Unknown names are ignored.
func (s *Scheduler) RemoveTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[name]; ok {
		s.cron.Remove(t.entryID)
		delete(s.tasks, name)
		s.log.Info("removed task", slog.String("name", name))
	}
}

// RunNow runs a registered task once outside its schedule and returns its
// error. It reports false when no task has that name.
func (s *Scheduler) RunNow(name string) (bool, error) {
	s.mu.RLock()
	t, ok := s.tasks[name]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, s.run(name, t)
}

func (s *Scheduler) run(name string, t *task) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := t.fn(ctx)
	elapsed := time.Since(start)

	s.mu.Lock()
	t.runs++
	t.lastRun = start
	t.lastDuration = elapsed
	t.lastErr = err
	if err != nil {
		t.failures++
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error("scheduled task failed",
			slog.String("name", name),
			slog.Duration("duration", elapsed),
			logger.Error(err))
		return err
	}
	s.log.Debug("scheduled task completed",
		slog.String("name", name),
		slog.Duration("duration", elapsed))
	return nil
}

// ListTasks returns the sorted names of all registered tasks.
func (s *Scheduler) ListTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TaskInfo describes a task and its latest outcome.
type TaskInfo struct {
	Name         string        `json:"name"`
	Interval     time.Duration `json:"interval"`
	NextRun      time.Time     `json:"next_run"`
	LastRun      time.Time     `json:"last_run,omitzero"`
	LastDuration time.Duration `json:"last_duration,omitempty"`
	LastError    string        `json:"last_error,omitempty"`
	Runs         int           `json:"runs"`
	Failures     int           `json:"failures"`
}

// GetTaskInfo returns every task sorted by name.
func (s *Scheduler) GetTaskInfo() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := make([]TaskInfo, 0, len(s.tasks))
	for name, t := range s.tasks {
		ti := TaskInfo{
			Name:         name,
			Interval:     t.interval,
			NextRun:      s.cron.Entry(t.entryID).Next,
			LastRun:      t.lastRun,
			LastDuration: t.lastDuration,
			Runs:         t.runs,
			Failures:     t.failures,
		}
		if t.lastErr != nil {
			ti.LastError = t.lastErr.Error()
		}
		info = append(info, ti)
	}
	slices.SortFunc(info, func(a, b TaskInfo) int { return strings.Compare(a.Name, b.Name) })
	return info
}

// Failing returns the names of tasks whose latest run returned an error.
func (s *Scheduler) Failing() []string {
	var names []string
	for _, ti := range s.GetTaskInfo() {
		if ti.LastError != "" {
			names = append(names, ti.Name)
		}
	}
	return names
}

// IsRunning reports whether Start was called without a later Stop.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
