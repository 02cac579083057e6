package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/api/http/handler"
)

func (r *Router) registerSessionRoutes(api fiber.Router, h *handler.SessionHandler, authRequired fiber.Handler) {
	group := api.Group("/sessions", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
	group.Patch("/:id/complete", h.Complete)
	group.Patch("/:id/cancel", h.Cancel)
}
