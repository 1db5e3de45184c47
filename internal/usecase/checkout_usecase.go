package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/internal/domain/service"
	"safehaven/pkg/logger"
)

type CheckoutUseCase struct {
	checkoutRepo  repository.CheckoutSessionRepository
	userRepo      repository.UserRepository
	catalog       *CatalogUseCase
	messaging     *MessagingUseCase
	payment       service.PaymentService
	baseURL       string
	systemAccount string
}

func NewCheckoutUseCase(
	checkoutRepo repository.CheckoutSessionRepository,
	userRepo repository.UserRepository,
	catalog *CatalogUseCase,
	messaging *MessagingUseCase,
	payment service.PaymentService,
	baseURL string,
	systemAccount string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		checkoutRepo:  checkoutRepo,
		userRepo:      userRepo,
		catalog:       catalog,
		messaging:     messaging,
		payment:       payment,
		baseURL:       baseURL,
		systemAccount: systemAccount,
	}
}

type CreateSessionResult struct {
	GatewaySessionID string `json:"id"`
	RedirectURL      string `json:"url,omitempty"`
}

// CreateSession partitions the cart by seller, persists the pending session
// and obtains a payment-gateway session for the grand total. The redirect
// URLs carry our session ID so the callbacks can be matched to this record.
func (uc *CheckoutUseCase) CreateSession(ctx context.Context, buyer string, cartItems []entity.CartItem) (*CreateSessionResult, error) {
	sellerTotals := make(map[string]float64)
	for _, item := range cartItems {
		sellerTotals[item.UploadedBy] += item.Price * float64(item.Quantity)
	}

	session := &entity.CheckoutSession{
		ID:           uuid.New().String(),
		Buyer:        buyer,
		SellerTotals: sellerTotals,
		CartItems:    cartItems,
		Status:       entity.CheckoutStatusPending,
	}

	gateway, err := uc.payment.CreateCheckoutSession(ctx, service.CheckoutRequest{
		Reference:  session.ID,
		Amount:     session.GrandTotal(),
		SuccessURL: fmt.Sprintf("%s/success?session_id=%s", uc.baseURL, session.ID),
		CancelURL:  fmt.Sprintf("%s/cancel?session_id=%s", uc.baseURL, session.ID),
	})
	if err != nil {
		return nil, err
	}

	session.GatewayRef = gateway.SessionID
	if err := uc.checkoutRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("Checkout session %s created for buyer %s, total %.2f", session.ID, buyer, session.GrandTotal())
	return &CreateSessionResult{
		GatewaySessionID: gateway.SessionID,
		RedirectURL:      gateway.RedirectURL,
	}, nil
}

// HandleSuccess settles the session: every seller with a nonzero total gets
// their balance credited and one aggregate delivery-instruction message from
// the system account; every cart line item is then decremented (or deleted)
// and announced with its own per-item delivery message. A failure mid-loop is
// logged and settlement continues; the session is deleted afterwards either
// way, so a partial settlement is not retried.
func (uc *CheckoutUseCase) HandleSuccess(ctx context.Context, sessionID string) error {
	session, err := uc.checkoutRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	buyer := session.Buyer
	address, err := uc.getBuyerAddress(ctx, buyer)
	if err != nil {
		logger.Warn("Failed to fetch address for buyer %s: %v", buyer, err)
	}

	var firstErr error
	for seller, total := range session.SellerTotals {
		if total == 0 {
			continue
		}

		if err := uc.userRepo.IncrementBalance(ctx, seller, total); err != nil {
			logger.Error("Failed to credit seller %s: %v", seller, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logger.Info("Credited seller %s with %.2f", seller, total)

		aggregate := fmt.Sprintf(
			"%s has bought your product(s), please ship it to: %s. The next or previous messages will display what to ship.",
			buyer, address,
		)
		uc.notifySeller(ctx, seller, aggregate)

		for _, item := range session.CartItems {
			if item.UploadedBy != seller {
				continue
			}

			if _, _, err := uc.catalog.Purchase(ctx, seller, item.ProductName, item.Quantity); err != nil {
				logger.Error("Failed to decrement product %s for seller %s: %v", item.ProductName, seller, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}

			perItem := fmt.Sprintf(
				"Ship/Deliver: %s of quantity %d to %s at address %s",
				item.ProductName, item.Quantity, buyer, address,
			)
			uc.notifySeller(ctx, seller, perItem)
		}
	}

	if err := uc.checkoutRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("Failed to delete checkout session %s: %v", sessionID, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// HandleCancel drops the pending session. Nothing was committed yet, so no
// compensating action is needed.
func (uc *CheckoutUseCase) HandleCancel(ctx context.Context, sessionID string) error {
	if err := uc.checkoutRepo.Delete(ctx, sessionID); err != nil {
		return err
	}

	logger.Info("Checkout session %s cancelled", sessionID)
	return nil
}

func (uc *CheckoutUseCase) getBuyerAddress(ctx context.Context, buyer string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, buyer)
	if err != nil {
		return "", err
	}
	return user.Address, nil
}

// notifySeller makes sure the system thread exists and sends one message on
// it. Both steps are best-effort; settlement does not fail on a chat error.
func (uc *CheckoutUseCase) notifySeller(ctx context.Context, seller, text string) {
	if _, err := uc.messaging.StartThread(ctx, uc.systemAccount, seller); err != nil {
		logger.Warn("Failed to ensure system thread with %s: %v", seller, err)
		return
	}
	if err := uc.messaging.SendMessage(ctx, uc.systemAccount, seller, text); err != nil {
		logger.Warn("Failed to send delivery message to %s: %v", seller, err)
	}
}
