// Package metrics holds the Prometheus collectors shared by the site packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_page_renders_total",
		Help: "Rendered pages and fragments by kind",
	}, []string{"kind"})

	CategorySelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_category_selections_total",
		Help: "Product filter selections by category",
	}, []string{"category"})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"outcome"})

	IntakeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "site_contact_intake_duration_seconds",
		Help:    "Time spent handing a submission to the intake backend",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 5, 10},
	}, []string{"intake"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "site_active_sessions",
		Help: "Visitor sessions currently held in memory",
	})

	SessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "site_sessions_swept_total",
		Help: "Idle visitor sessions evicted by the sweep task",
	})
)

// Submission outcomes
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRejected    = "not_allowed"
	OutcomeRateLimited = "rate_limited"
	OutcomeSucceeded   = "succeeded"
	OutcomeFailed      = "failed"
)
