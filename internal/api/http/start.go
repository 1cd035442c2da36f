package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/turnos-app/turnos_backend/config"
	"github.com/turnos-app/turnos_backend/internal/api/http/router"
	"github.com/turnos-app/turnos_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module, // This is the http.Module from server.go

		// Invoke *fiber.App because that's what NewServer returns.
		// This forces the creation of fiber.App, triggering the OnStart hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
