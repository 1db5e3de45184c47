package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"safehaven/internal/usecase"
	"safehaven/pkg/errors"
	"safehaven/pkg/response"
)

type UserHandler struct {
	identityUseCase *usecase.IdentityUseCase
}

func NewUserHandler(identityUseCase *usecase.IdentityUseCase) *UserHandler {
	return &UserHandler{
		identityUseCase: identityUseCase,
	}
}

type signUpRequest struct {
	Username  string `query:"username" validate:"required"`
	Email     string `query:"email" validate:"required,email"`
	FirstName string `query:"firstName" validate:"required"`
	LastName  string `query:"lastName" validate:"required"`
	Address   string `query:"address" validate:"required"`
	Password  string `query:"password" validate:"required,min=6"`
}

func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid signup parameters", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.identityUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"username": user.Username,
	})
}

func (h *UserHandler) UpdateKarma(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("username is required", nil))
	}

	delta, err := strconv.ParseInt(c.QueryParam("delta"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("delta must be an integer", err))
	}

	if err := h.identityUseCase.AdjustKarma(c.Request().Context(), username, delta); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"username": username,
		"delta":    delta,
	})
}

func (h *UserHandler) GetUserKarma(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("username is required", nil))
	}

	karma, err := h.identityUseCase.GetKarma(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"karma": karma})
}

func (h *UserHandler) GetUserBalance(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("username is required", nil))
	}

	balance, err := h.identityUseCase.GetBalance(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]float64{"balance": balance})
}

// GetUserName resolves a username by email. The email arrives in the
// "username" query parameter; the client has always sent it that way.
func (h *UserHandler) GetUserName(c echo.Context) error {
	email := c.QueryParam("username")
	if email == "" {
		return response.Error(c, errors.BadRequest("username is required", nil))
	}

	uname, err := h.identityUseCase.ResolveUsernameByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"uname": uname})
}
