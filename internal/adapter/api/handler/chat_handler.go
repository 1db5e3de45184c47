package handler

import (
	"github.com/labstack/echo/v4"

	"safehaven/internal/usecase"
	"safehaven/pkg/errors"
	"safehaven/pkg/response"
)

type ChatHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewChatHandler(messagingUseCase *usecase.MessagingUseCase) *ChatHandler {
	return &ChatHandler{
		messagingUseCase: messagingUseCase,
	}
}

type sendMessageRequest struct {
	Sender   string `json:"sender" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.messagingUseCase.SendMessage(c.Request().Context(), req.Sender, req.Receiver, req.Message); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "Message sent"})
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	user1 := c.QueryParam("user1")
	user2 := c.QueryParam("user2")
	if user1 == "" || user2 == "" {
		return response.Error(c, errors.BadRequest("user1 and user2 are required", nil))
	}

	messages, err := h.messagingUseCase.GetMessages(c.Request().Context(), user1, user2)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ChatHandler) UserChats(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("Username is required", nil))
	}

	chats, err := h.messagingUseCase.ListThreadsForUser(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}
