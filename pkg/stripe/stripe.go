// Package stripe provides a minimal HTTP client for the Stripe API,
// covering customers, subscription checkout and webhook verification.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/practiq/practiq_backend/config"
)

var (
	ErrMissingKey         = errors.New("stripe: secret key is not configured")
	ErrUnexpectedResponse = errors.New("stripe: unexpected response from API")
)

// APIError is a decoded Stripe error payload.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: api error (status=%d, type=%s, code=%s): %s",
		e.StatusCode, e.Type, e.Code, e.Message)
}

// Client is a lightweight Stripe HTTP client.
type Client struct {
	secretKey  string
	baseURL    string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

// New creates a Client from central config.
func New(cfg config.StripeConfig) *Client {
	return &Client{
		secretKey:  cfg.SecretKey,
		baseURL:    "https://api.stripe.com/v1",
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Customer is the subset of the Stripe customer object we use.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CheckoutSession is the subset of the Stripe checkout session object we use.
type CheckoutSession struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
}

// Subscription is the subset of the Stripe subscription object we use.
type Subscription struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
	Items            struct {
		Data []struct {
			Price struct {
				ID       string `json:"id"`
				Nickname string `json:"nickname"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

// PriceID returns the price of the subscription's first item, or "" when
// the items list is empty.
func (s *Subscription) PriceID() string {
	if len(s.Items.Data) == 0 {
		return ""
	}
	return s.Items.Data[0].Price.ID
}

// CreateCustomer creates a Stripe customer keyed to an application user.
func (c *Client) CreateCustomer(ctx context.Context, email, name, userID string) (*Customer, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)
	form.Set("metadata[user_id]", userID)

	var out Customer
	if err := c.post(ctx, "/customers", form, &out); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	if out.ID == "" {
		return nil, ErrUnexpectedResponse
	}
	return &out, nil
}

// CreateSubscriptionCheckout opens a checkout session in subscription mode
// for the given customer and price. Returns the hosted payment page URL.
func (c *Client) CreateSubscriptionCheckout(ctx context.Context, customerID, priceID string) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	var out CheckoutSession
	if err := c.post(ctx, "/checkout/sessions", form, &out); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if out.URL == "" {
		return nil, ErrUnexpectedResponse
	}
	return &out, nil
}

// post sends a form-encoded POST request to baseURL+path and decodes the
// JSON response into out. Stripe's API is form-in, JSON-out.
func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	if c.secretKey == "" {
		return ErrMissingKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Type    string `json:"type"`
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err != nil {
			return fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
		}
		return &APIError{
			StatusCode: res.StatusCode,
			Type:       errResp.Error.Type,
			Code:       errResp.Error.Code,
			Message:    errResp.Error.Message,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
