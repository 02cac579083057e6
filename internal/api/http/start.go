package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/practiq/practiq_backend/config"
	"github.com/practiq/practiq_backend/internal/api/http/router"
	"github.com/practiq/practiq_backend/internal/app"
)

// Start assembles the fx graph and blocks until shutdown.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		// invoking *fiber.App forces server construction, which
		// registers the OnStart hook
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
