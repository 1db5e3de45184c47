package router

import (
	"github.com/labstack/echo/v4"

	"safehaven/internal/adapter/api/handler"
)

func SetupCheckoutRouter(e *echo.Echo) {
	checkoutHandler := handler.GetCheckoutHandler()

	e.POST("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	e.GET("/success", checkoutHandler.Success)
	e.GET("/cancel", checkoutHandler.Cancel)
}
