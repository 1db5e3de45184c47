package router

import (
	"github.com/labstack/echo/v4"

	"safehaven/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	e.GET("/signUp", userHandler.SignUp)
	e.GET("/updateKarma", userHandler.UpdateKarma)
	e.GET("/getUserKarma", userHandler.GetUserKarma)
	e.GET("/getUserBalance", userHandler.GetUserBalance)
	e.GET("/getUserName", userHandler.GetUserName)
}
