package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/api/http/handler"
)

func (r *Router) registerClientRoutes(api fiber.Router, h *handler.ClientHandler, dash *handler.DashboardHandler, authRequired fiber.Handler) {
	group := api.Group("/clients", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Patch("/:id", h.Update)
	group.Get("/:id/summary", dash.ClientSummary)
}
