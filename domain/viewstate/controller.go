package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/pkg/logger"
	"github.com/wutian475-collab/wutian111/pkg/metrics"
)

// Controller owns the view state of one visitor. Every event runs to
// completion under mu, including the intake completion and the hold timer.
type Controller struct {
	mu       sync.Mutex
	state    ViewState
	lastSeen time.Time

	intake contact.Intake
	hold   time.Duration
	log    *slog.Logger

	// ctx bounds the intake call; canceled by Close.
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	// gen increments on every accepted submit so stale completions and
	// timers from an earlier attempt are ignored.
	gen   uint64
	timer *time.Timer
}

// NewController creates a controller in the initial state. The intake call
// of a submission lives as long as parent or until Close.
func NewController(parent context.Context, intake contact.Intake, hold time.Duration, log *slog.Logger) *Controller {
	ctx, cancel := context.WithCancel(parent)
	return &Controller{
		state:    New(),
		lastSeen: time.Now(),
		intake:   intake,
		hold:     hold,
		log:      log.With(logger.Scope("viewstate")),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// LastSeen returns when the visitor last triggered an event.
func (c *Controller) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// Touch marks the visitor as active.
func (c *Controller) Touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

// apply runs fn on the state under the lock and stores the result.
func (c *Controller) apply(fn func(v ViewState) (ViewState, error)) (ViewState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = time.Now()
	next, err := fn(c.state)
	if err != nil {
		return c.state.Clone(), err
	}
	c.state = next
	return c.state.Clone(), nil
}

// SelectCategory changes the product filter.
func (c *Controller) SelectCategory(cat catalog.Category) (ViewState, error) {
	v, err := c.apply(func(v ViewState) (ViewState, error) {
		return v.SetActiveCategory(cat)
	})
	if err == nil {
		metrics.CategorySelections.WithLabelValues(string(cat)).Inc()
	}
	return v, err
}

// ToggleMenu flips the mobile menu.
func (c *Controller) ToggleMenu() ViewState {
	v, _ := c.apply(func(v ViewState) (ViewState, error) {
		return v.ToggleMenu(), nil
	})
	return v
}

// FollowNavLink closes the menu and resolves the link's anchor.
func (c *Controller) FollowNavLink(href string) (ViewState, string, error) {
	var anchor string
	v, err := c.apply(func(v ViewState) (ViewState, error) {
		next, a, err := v.FollowNavLink(href)
		anchor = a
		return next, err
	})
	return v, anchor, err
}

// InvokePrimaryCTA closes the menu and returns the contact anchor.
func (c *Controller) InvokePrimaryCTA() (ViewState, string) {
	v, _ := c.apply(func(v ViewState) (ViewState, error) {
		return v.InvokePrimaryCTA(), nil
	})
	return v, PrimaryCTAAnchor
}

// ObserveScroll records a scroll offset.
func (c *Controller) ObserveScroll(offset float64) ViewState {
	v, _ := c.apply(func(v ViewState) (ViewState, error) {
		return v.ObserveScroll(offset), nil
	})
	return v
}

// Submit validates raw and, when accepted, moves the form to submitting and
// hands the snapshot to the intake in the background. It returns a
// *contact.ValidationError or ErrSubmitNotAllowed when the submit is refused.
// ctx only carries the request's trace; the intake call is bound to the
// controller's lifetime.
func (c *Controller) Submit(ctx context.Context, raw contact.Raw) (ViewState, error) {
	s := contact.Normalize(raw)
	s.SubmittedAt = time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = time.Now()

	if c.closed {
		return c.state.Clone(), ErrSubmitNotAllowed
	}
	if !c.state.FormStatus.CanTransitionTo(FormSubmitting) {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return c.state.Clone(), fmt.Errorf("%w: form is %s", ErrSubmitNotAllowed, c.state.FormStatus)
	}
	if err := contact.Validate(s); err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			c.state = c.state.RejectSubmit(verr.Fields, raw)
		}
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return c.state.Clone(), err
	}

	next, err := c.state.BeginSubmit(s)
	if err != nil {
		return c.state.Clone(), err
	}
	c.state = next
	c.gen++
	c.stopTimer()
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()

	intakeCtx := trace.ContextWithSpanContext(c.ctx, trace.SpanContextFromContext(ctx))
	go c.runIntake(intakeCtx, c.gen, s)

	return c.state.Clone(), nil
}

func (c *Controller) runIntake(ctx context.Context, gen uint64, s contact.Submission) {
	receipt, intakeErr := c.intake.Submit(ctx, s)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}

	next, err := c.state.CompleteSubmit(intakeErr)
	if err != nil {
		c.log.Error("unexpected form state after intake", logger.Error(err))
		return
	}
	c.state = next

	if intakeErr != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
	} else {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSucceeded).Inc()
		c.log.Debug("submission accepted",
			slog.String("receipt_id", receipt.ID),
			slog.String("intake", receipt.Intake),
		)
	}

	c.timer = time.AfterFunc(c.hold, func() { c.resetForm(gen) })
}

func (c *Controller) resetForm(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	if next, err := c.state.ResetForm(); err == nil {
		c.state = next
	}
	c.timer = nil
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Close cancels an in-flight intake call and any pending timer. Events after
// Close still update the state but submissions are refused.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimer()
	c.cancel()
}
