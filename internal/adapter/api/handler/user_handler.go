package handler

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/usecase"
	"filedock/pkg/errors"
	"filedock/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, userResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *UserHandler) GetMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	user, err := h.userUseCase.GetMe(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, userResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}
