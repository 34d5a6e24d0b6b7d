package health

import (
	"net/http"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/scheduler"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg       *config.Config
	sessions  *viewstate.Store
	scheduler *scheduler.Scheduler
	intake    contact.Intake
	host      hostProbe
	startAt   time.Time
	ready     atomic.Bool
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, sessions *viewstate.Store, sched *scheduler.Scheduler, intake contact.Intake) *Handler {
	return &Handler{
		cfg:       cfg,
		sessions:  sessions,
		scheduler: sched,
		intake:    intake,
		host:      newHostProbe(),
		startAt:   time.Now(),
	}
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health
func (h *Handler) Health(c echo.Context) error {
	checks := map[string]Check{
		"intake": {Status: "healthy", Message: h.intake.Name()},
	}

	schedStatus := "healthy"
	schedMessage := ""
	if h.cfg.Scheduler.Enabled && !h.scheduler.IsRunning() {
		schedStatus = "degraded"
		schedMessage = "session sweep not running"
	} else if failing := h.scheduler.Failing(); len(failing) > 0 {
		schedStatus = "degraded"
		schedMessage = "last run failed: " + strings.Join(failing, ", ")
	}
	checks["scheduler"] = Check{Status: schedStatus, Message: schedMessage}

	overall := "healthy"
	for _, ch := range checks {
		if ch.Status != "healthy" {
			overall = ch.Status
		}
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	})
}

// Healthz returns a simple liveness check
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready reports whether the server accepts traffic
func (h *Handler) Ready(c echo.Context) error {
	if !h.ready.Load() {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Server is starting or shutting down",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime information outside production
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"version":     version.Current(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"host":     h.host.collect(c.Request().Context()),
		"sessions": h.sessions.Len(),
		"intake":   h.intake.Name(),
		"scheduler": map[string]any{
			"running": h.scheduler.IsRunning(),
			"tasks":   h.scheduler.GetTaskInfo(),
		},
	})
}
