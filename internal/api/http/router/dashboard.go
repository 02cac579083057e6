package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/api/http/handler"
)

func (r *Router) registerDashboardRoutes(api fiber.Router, h *handler.DashboardHandler, authRequired fiber.Handler) {
	group := api.Group("/dashboard", authRequired)
	group.Get("/overview", h.Overview)
	group.Get("/analytics", h.Analytics)
}
