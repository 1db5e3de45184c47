package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"

	"safehaven/internal/usecase"
	"safehaven/pkg/errors"
	"safehaven/pkg/response"
)

const maxProductPhotos = 10

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *ProductHandler) UploadProduct(c echo.Context) error {
	username := c.FormValue("username")
	productName := c.FormValue("productName")
	if username == "" || productName == "" {
		return response.Error(c, errors.BadRequest("username and productName are required", nil))
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return response.Error(c, errors.BadRequest("price must be a positive number", err))
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 0 {
		return response.Error(c, errors.BadRequest("quantity must be a non-negative integer", err))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	files := form.File["photos"]
	if len(files) > maxProductPhotos {
		return response.Error(c, errors.BadRequest("A maximum of 10 photos is allowed", nil))
	}

	photos := make([]usecase.PhotoInput, 0, len(files))
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return response.Error(c, errors.Internal("Unable to read photo", err))
		}
		opened = append(opened, src)

		photos = append(photos, usecase.PhotoInput{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Content:     src,
		})
	}

	product, err := h.catalogUseCase.Upload(c.Request().Context(), usecase.UploadProductInput{
		Uploader:    username,
		ProductName: productName,
		Description: c.FormValue("description"),
		Price:       price,
		Quantity:    quantity,
		Photos:      photos,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	username := c.QueryParam("username")
	productName := c.QueryParam("productName")
	if username == "" || productName == "" {
		return response.Error(c, errors.BadRequest("username and productName are required", nil))
	}

	if err := h.catalogUseCase.Delete(c.Request().Context(), username, productName); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"productName": productName,
		"deletedBy":   username,
	})
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetUserProducts(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("username is required", nil))
	}

	products, err := h.catalogUseCase.ListByUser(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"products": products})
}

type opinionRequest struct {
	Username    string `json:"username" validate:"required"`
	ProductID   string `json:"productId" validate:"required"`
	WhoUploaded string `json:"whoUploaded" validate:"required"`
}

func (h *ProductHandler) LikeProduct(c echo.Context) error {
	var req opinionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.catalogUseCase.Like(c.Request().Context(), req.Username, req.ProductID, req.WhoUploaded); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "liked"})
}

func (h *ProductHandler) DislikeProduct(c echo.Context) error {
	var req opinionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.catalogUseCase.Dislike(c.Request().Context(), req.Username, req.ProductID, req.WhoUploaded); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "disliked"})
}
