package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupUserRouter(e)
	SetupProductRouter(e)
	SetupChatRouter(e)
	SetupCheckoutRouter(e)
	SetupHealthRouter(e)
}
