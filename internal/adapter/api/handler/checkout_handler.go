package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safehaven/internal/domain/entity"
	"safehaven/internal/usecase"
	"safehaven/pkg/errors"
	"safehaven/pkg/logger"
	"safehaven/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type cartItemRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UploadedBy  string  `json:"uploadedBy" validate:"required"`
}

type createCheckoutSessionRequest struct {
	CurrentUser string            `json:"currentUser" validate:"required"`
	CartItems   []cartItemRequest `json:"cartItems" validate:"required,min=1,dive"`
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	var req createCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cartItems := make([]entity.CartItem, len(req.CartItems))
	for i, item := range req.CartItems {
		cartItems[i] = entity.CartItem{
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			UploadedBy:  item.UploadedBy,
		}
	}

	result, err := h.checkoutUseCase.CreateSession(c.Request().Context(), req.CurrentUser, cartItems)
	if err != nil {
		return response.Error(c, err)
	}

	// The gateway session ID goes back bare; the storefront hands it straight
	// to the gateway's redirect helper.
	return c.JSON(http.StatusOK, map[string]string{"id": result.GatewaySessionID})
}

func (h *CheckoutHandler) Success(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("session_id is required", nil))
	}

	if err := h.checkoutUseCase.HandleSuccess(c.Request().Context(), sessionID); err != nil {
		logger.Error("Settlement failed for session %s: %v", sessionID, err)
		return response.Error(c, err)
	}

	return c.String(http.StatusOK, "Payment successful! Thank you for your purchase. We have sent your address to the seller(s)")
}

func (h *CheckoutHandler) Cancel(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.Error(c, errors.BadRequest("session_id is required", nil))
	}

	if err := h.checkoutUseCase.HandleCancel(c.Request().Context(), sessionID); err != nil {
		return response.Error(c, err)
	}

	return c.String(http.StatusOK, "Payment canceled. Please try again.")
}
