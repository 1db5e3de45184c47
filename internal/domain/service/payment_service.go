package service

import (
	"context"
)

type CheckoutRequest struct {
	// Reference is our durable checkout session ID. It is embedded in the
	// success/cancel redirect URLs so the callbacks can be tied back to the
	// stored session instead of trusting a client-supplied buyer name.
	Reference  string
	Amount     float64 // grand total in whole currency units (USD)
	SuccessURL string
	CancelURL  string
}

type CheckoutResponse struct {
	SessionID   string `json:"id"`
	RedirectURL string `json:"url,omitempty"`
}

// PaymentService abstracts the hosted payment gateway. The application only
// needs one aggregate payment session per cart; capture, refunds and webhooks
// stay on the gateway side.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
}
