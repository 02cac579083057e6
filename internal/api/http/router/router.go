package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/practiq/practiq_backend/config"
	"github.com/practiq/practiq_backend/internal/api/http/handler"
	"github.com/practiq/practiq_backend/internal/api/http/middleware"
	"github.com/practiq/practiq_backend/internal/service/auth"
	"github.com/practiq/practiq_backend/internal/service/billing"
	"github.com/practiq/practiq_backend/internal/store"
	pasetotoken "github.com/practiq/practiq_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	AuthSvc    auth.Service
	BillingSvc billing.Service
	Workspace  *store.Manager
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	authH := handler.NewAuthHandler(r.p.AuthSvc, r.p.Workspace)
	clientH := handler.NewClientHandler(r.p.Workspace)
	sessionH := handler.NewSessionHandler(r.p.Workspace)
	noteH := handler.NewNoteHandler(r.p.Workspace)
	dashboardH := handler.NewDashboardHandler(r.p.Workspace)
	billingH := handler.NewBillingHandler(r.p.BillingSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerClientRoutes(api, clientH, dashboardH, authRequired)
	r.registerSessionRoutes(api, sessionH, authRequired)
	r.registerNoteRoutes(api, noteH, authRequired)
	r.registerDashboardRoutes(api, dashboardH, authRequired)
	r.registerBillingRoutes(api, billingH, authRequired)
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
