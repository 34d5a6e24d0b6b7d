package viewstate

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/internal/config"
)

var Module = fx.Module("viewstate",
	fx.Provide(NewStoreFromConfig),
	fx.Invoke(RegisterStoreLifecycle),
)

// NewStoreFromConfig creates the session store from config.
func NewStoreFromConfig(cfg *config.Config, intake contact.Intake, log *slog.Logger) *Store {
	return NewStore(intake, cfg.Contact.SuccessHold, cfg.Session.TTL, log)
}

// RegisterStoreLifecycle cancels in-flight submissions on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing visitor sessions", slog.Int("sessions", store.Len()))
			store.Close()
			return nil
		},
	})
}
