package handler

import (
	"safehaven/internal/usecase"
)

var (
	userHandler     *UserHandler
	productHandler  *ProductHandler
	chatHandler     *ChatHandler
	checkoutHandler *CheckoutHandler
)

func Setup(
	identityUseCase *usecase.IdentityUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	messagingUseCase *usecase.MessagingUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
) {
	userHandler = NewUserHandler(identityUseCase)
	productHandler = NewProductHandler(catalogUseCase)
	chatHandler = NewChatHandler(messagingUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}
