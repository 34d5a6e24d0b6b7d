// Package main provides the entry point for the 商途 AI website
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/health"
	"github.com/wutian475-collab/wutian111/domain/scheduler"
	"github.com/wutian475-collab/wutian111/domain/site"
	"github.com/wutian475-collab/wutian111/domain/tracing"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/internal/server"
	"github.com/wutian475-collab/wutian111/pkg/logger"
)

func main() {
	// Load .env files if present (for local development).
	// .env.local is overloaded so its values take precedence.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		catalog.Module,
		contact.Module,
		viewstate.Module,
		health.Module,
		site.Module,

		// Session sweep
		scheduler.Module,
	).Run()
}
