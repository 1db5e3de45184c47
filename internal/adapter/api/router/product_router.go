package router

import (
	"github.com/labstack/echo/v4"

	"safehaven/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	e.POST("/uploadProduct", productHandler.UploadProduct)
	e.GET("/deleteProduct", productHandler.DeleteProduct)
	e.GET("/products", productHandler.ListProducts)
	e.GET("/getUserProducts", productHandler.GetUserProducts)
	e.POST("/like-product", productHandler.LikeProduct)
	e.POST("/dislike-product", productHandler.DislikeProduct)
}
