package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/api/http/handler"
)

func (r *Router) registerNoteRoutes(api fiber.Router, h *handler.NoteHandler, authRequired fiber.Handler) {
	group := api.Group("/notes", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
}
