package health

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("health",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterReadiness),
)

// RegisterReadiness marks the service ready once every start hook ran and
// not ready as soon as shutdown begins.
func RegisterReadiness(lc fx.Lifecycle, h *Handler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			h.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			h.SetReady(false)
			return nil
		},
	})
}
