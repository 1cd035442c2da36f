package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/turnos-app/turnos_backend/config"
	"github.com/turnos-app/turnos_backend/internal/api/http/handler"
	"github.com/turnos-app/turnos_backend/internal/service/booking"
	"github.com/turnos-app/turnos_backend/internal/service/directory"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client `optional:"true"`
	BookingSvc   booking.Service
	DirectorySvc directory.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	psychH := handler.NewPsychologistHandler(r.p.DirectorySvc)
	sessionH := handler.NewSessionHandler(r.p.BookingSvc)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerPsychologistRoutes(api, psychH)
	r.registerSessionRoutes(api, sessionH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
