package billing

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrStripeFailure    = errors.New("stripe request failed")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMissingPriceID   = errors.New("price id is required")
)
