package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wutian475-collab/wutian111/pkg/logger"
	"github.com/wutian475-collab/wutian111/pkg/metrics"
	"github.com/wutian475-collab/wutian111/pkg/tracing"
)

// Intake hands an accepted submission to whoever follows up on leads.
// Implementations return *TransportError or *ServerRejection on failure.
type Intake interface {
	Submit(ctx context.Context, s Submission) (Receipt, error)
	Name() string
}

// SimulatedIntake accepts every submission after a fixed delay and only
// logs it. It cannot fail unless ctx is canceled.
type SimulatedIntake struct {
	delay     time.Duration
	recipient string
	log       *slog.Logger
}

// NewSimulatedIntake creates a simulated intake.
func NewSimulatedIntake(delay time.Duration, recipient string, log *slog.Logger) *SimulatedIntake {
	return &SimulatedIntake{
		delay:     delay,
		recipient: recipient,
		log:       log.With(logger.Scope("contact.simulated")),
	}
}

func (i *SimulatedIntake) Name() string { return "simulated" }

func (i *SimulatedIntake) Submit(ctx context.Context, s Submission) (Receipt, error) {
	timer := time.NewTimer(i.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, &TransportError{Intake: i.Name(), Err: ctx.Err()}
	case <-timer.C:
	}

	i.log.Info("contact submission captured",
		slog.String("recipient", i.recipient),
		slog.String("name", s.Name),
		slog.String("contact", s.Contact),
		slog.String("project_type", s.ProjectType),
		slog.String("budget", s.Budget),
		slog.Int("description_len", len(s.Description)),
	)

	return Receipt{ID: uuid.NewString(), Intake: i.Name(), AcceptedAt: time.Now()}, nil
}

// instrumented wraps an Intake with a span, a duration histogram and a log
// line per failure.
type instrumented struct {
	next Intake
	log  *slog.Logger
}

// Instrument adds tracing and metrics around next.
func Instrument(next Intake, log *slog.Logger) Intake {
	return &instrumented{next: next, log: log.With(logger.Scope("contact.intake"))}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Submit(ctx context.Context, s Submission) (Receipt, error) {
	ctx, span := tracing.Start(ctx, "contact.intake.submit",
		attribute.String("contact.intake.kind", i.next.Name()),
		attribute.String("contact.project_type", s.ProjectType),
	)
	defer span.End()

	start := time.Now()
	r, err := i.next.Submit(ctx, s)
	metrics.IntakeDuration.WithLabelValues(i.next.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		tracing.RecordError(span, err)
		i.log.Warn("contact intake failed",
			slog.String("intake", i.next.Name()),
			slog.String("kind", string(Classify(err))),
			logger.Error(err),
		)
		return Receipt{}, err
	}
	span.SetAttributes(attribute.String("contact.receipt.id", r.ID))
	return r, nil
}
