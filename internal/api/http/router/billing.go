package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/api/http/handler"
)

func (r *Router) registerBillingRoutes(api fiber.Router, h *handler.BillingHandler, authRequired fiber.Handler) {
	group := api.Group("/billing")
	group.Post("/subscription", authRequired, h.CreateSubscription)

	// Stripe calls this endpoint directly; authentication is the
	// signature header, not a bearer token.
	group.Post("/webhook", h.Webhook)
}
