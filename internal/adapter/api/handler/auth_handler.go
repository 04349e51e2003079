package handler

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/adapter/api/middleware"
	"filedock/internal/usecase"
	"filedock/pkg/errors"
	"filedock/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Connect exchanges a Basic credential pair for a session token.
func (h *AuthHandler) Connect(c echo.Context) error {
	email, password, ok := c.Request().BasicAuth()
	if !ok {
		return response.Error(c, errors.Unauthorized("Unauthorized", nil))
	}

	token, err := h.authUseCase.Login(c.Request().Context(), email, password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"token": token,
	})
}

// Disconnect revokes the presented session. Revocation is idempotent, so
// the middleware having already resolved the token is the only gate.
func (h *AuthHandler) Disconnect(c echo.Context) error {
	token := c.Request().Header.Get(middleware.TokenHeader)

	if err := h.authUseCase.Logout(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
