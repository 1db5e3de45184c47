package service

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"safehaven/pkg/errors"
	"safehaven/pkg/logger"
)

type StripePaymentService struct {
	sc *client.API
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripePaymentService{sc: sc}
}

func (s *StripePaymentService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	logger.Info("Creating Stripe checkout session for reference %s, amount %.2f", req.Reference, req.Amount)

	// Stripe wants the amount in cents. The whole cart is billed as a single
	// aggregate line item; per-seller accounting happens at settlement time.
	unitAmount := int64(math.Round(req.Amount * 100))

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Cart Products"),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}
	params.Context = ctx

	session, err := s.sc.CheckoutSessions.New(params)
	if err != nil {
		logger.Error("Stripe checkout session creation failed: %v", err)
		return nil, errors.Internal("Failed to create payment session", err)
	}

	return &CheckoutResponse{
		SessionID:   session.ID,
		RedirectURL: session.URL,
	}, nil
}
