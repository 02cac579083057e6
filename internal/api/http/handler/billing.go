package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/practiq/practiq_backend/internal/service/billing"
)

type BillingHandler struct {
	svc billing.Service
}

func NewBillingHandler(svc billing.Service) *BillingHandler {
	return &BillingHandler{svc: svc}
}

// POST /billing/subscription  (requires AuthRequired middleware)
func (h *BillingHandler) CreateSubscription(c fiber.Ctx) error {
	userID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PriceID string `json:"price_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	checkout, err := h.svc.CreateCheckout(c.Context(), userID, body.PriceID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrMissingPriceID):
			return badRequest(c, err.Error())
		case errors.Is(err, billing.ErrUserNotFound):
			return unauthorized(c)
		default:
			slog.Error("checkout failed", "error", err, "user_id", userID)
			return internalError(c)
		}
	}

	return ok(c, fiber.Map{
		"checkout_id":  checkout.ID,
		"checkout_url": checkout.URL,
	})
}

// POST /billing/webhook  (no auth; verified by signature)
func (h *BillingHandler) Webhook(c fiber.Ctx) error {
	payload := c.Body()
	sig := c.Get("Stripe-Signature")

	if err := h.svc.HandleWebhook(c.Context(), payload, sig); err != nil {
		if errors.Is(err, billing.ErrInvalidSignature) {
			return badRequest(c, "invalid signature")
		}
		slog.Error("webhook processing failed", "error", err)
		return internalError(c)
	}

	return ok(c, fiber.Map{"received": true})
}
