package router

import (
	"github.com/labstack/echo/v4"

	"safehaven/internal/adapter/api/handler"
)

func SetupChatRouter(e *echo.Echo) {
	chatHandler := handler.GetChatHandler()

	e.POST("/send-message", chatHandler.SendMessage)
	e.GET("/get-messages", chatHandler.GetMessages)
	e.GET("/user-chats", chatHandler.UserChats)
}
