package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/repo"
	entuser "github.com/practiq/practiq_backend/internal/repo/user"
	"github.com/practiq/practiq_backend/pkg/email"
	stripepkg "github.com/practiq/practiq_backend/pkg/stripe"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// CreateCheckout opens a hosted Stripe checkout page for a
	// subscription. The Stripe customer is created on first use and
	// remembered on the user row.
	CreateCheckout(ctx context.Context, userID uuid.UUID, priceID string) (*stripepkg.CheckoutSession, error)

	// HandleWebhook verifies a Stripe webhook payload and applies
	// subscription lifecycle events to the owning user. Events for
	// unknown customers or of unknown types are acknowledged and
	// dropped.
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type billingService struct {
	db            *repo.Client
	stripe        *stripepkg.Client
	mail          *email.Client
	webhookSecret string
}

func New(db *repo.Client, sc *stripepkg.Client, mail *email.Client, webhookSecret string) Service {
	return &billingService{db: db, stripe: sc, mail: mail, webhookSecret: webhookSecret}
}

func (s *billingService) CreateCheckout(ctx context.Context, userID uuid.UUID, priceID string) (*stripepkg.CheckoutSession, error) {
	if priceID == "" {
		return nil, ErrMissingPriceID
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	customerID, err := s.ensureCustomer(ctx, u)
	if err != nil {
		return nil, err
	}

	checkout, err := s.stripe.CreateSubscriptionCheckout(ctx, customerID, priceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStripeFailure, err)
	}
	return checkout, nil
}

// ensureCustomer returns the user's Stripe customer ID, creating and
// persisting one when the user has none yet.
func (s *billingService) ensureCustomer(ctx context.Context, u *repo.User) (string, error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, nil
	}

	cust, err := s.stripe.CreateCustomer(ctx, u.Email, u.FullName, u.ID.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStripeFailure, err)
	}

	if err := s.db.User.UpdateOne(u).
		SetStripeCustomerID(cust.ID).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("store customer id: %w", err)
	}
	return cust.ID, nil
}

func (s *billingService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := stripepkg.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		return s.applySubscription(ctx, event)
	case "customer.subscription.deleted":
		return s.clearSubscription(ctx, event)
	default:
		slog.Debug("ignoring webhook event", "type", event.Type, "id", event.ID)
		return nil
	}
}

func (s *billingService) applySubscription(ctx context.Context, event *stripepkg.Event) error {
	sub, err := event.Subscription()
	if err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}

	u, err := s.userByCustomer(ctx, sub.Customer)
	if err != nil {
		return err
	}
	if u == nil {
		slog.Warn("webhook for unknown customer", "customer", sub.Customer, "event", event.ID)
		return nil
	}

	wasActive := u.SubscriptionStatus == entuser.SubscriptionStatusActive

	upd := s.db.User.UpdateOne(u).
		SetStripeSubscriptionID(sub.ID).
		SetSubscriptionStatus(mapSubscriptionStatus(sub.Status)).
		SetSubscriptionPlan(sub.PriceID())
	if sub.CurrentPeriodEnd > 0 {
		upd = upd.SetSubscriptionEndsAt(time.Unix(sub.CurrentPeriodEnd, 0))
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("apply subscription: %w", err)
	}

	if !wasActive && sub.Status == "active" && s.mail != nil {
		msg := email.BuildSubscriptionActivatedEmail(email.SubscriptionEmailData{
			FullName: u.FullName,
			Email:    u.Email,
			Status:   sub.Status,
		})
		if sendErr := s.mail.Send(ctx, msg); sendErr != nil {
			slog.Warn("subscription email failed", "error", sendErr, "email", u.Email)
		}
	}

	return nil
}

func (s *billingService) clearSubscription(ctx context.Context, event *stripepkg.Event) error {
	sub, err := event.Subscription()
	if err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}

	u, err := s.userByCustomer(ctx, sub.Customer)
	if err != nil {
		return err
	}
	if u == nil {
		slog.Warn("webhook for unknown customer", "customer", sub.Customer, "event", event.ID)
		return nil
	}

	if err := s.db.User.UpdateOne(u).
		ClearStripeSubscriptionID().
		SetSubscriptionStatus(entuser.SubscriptionStatusNone).
		ClearSubscriptionPlan().
		ClearSubscriptionEndsAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("clear subscription: %w", err)
	}
	return nil
}

// userByCustomer looks up the user owning a Stripe customer ID. A nil
// user with a nil error means no user matched.
func (s *billingService) userByCustomer(ctx context.Context, customerID string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.StripeCustomerID(customerID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by customer: %w", err)
	}
	return u, nil
}

func mapSubscriptionStatus(status string) entuser.SubscriptionStatus {
	switch status {
	case "trialing":
		return entuser.SubscriptionStatusTrialing
	case "active":
		return entuser.SubscriptionStatusActive
	case "past_due":
		return entuser.SubscriptionStatusPastDue
	case "canceled", "unpaid", "incomplete_expired":
		return entuser.SubscriptionStatusCanceled
	default:
		return entuser.SubscriptionStatusNone
	}
}
