package middleware

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/usecase"
	"filedock/pkg/errors"
	"filedock/pkg/response"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-Token"

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(TokenHeader)

		userID, err := m.authUseCase.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Unauthorized", nil))
		}

		c.Set("uid", userID)
		return next(c)
	}
}

// ResolveUser is the content-route variant: the token is resolved when
// present but never enforced, since public files are readable without a
// session. An unresolvable token simply leaves the caller anonymous;
// visibility is decided per file downstream.
func (m *AuthMiddleware) ResolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(TokenHeader)

		userID, err := m.authUseCase.Authenticate(c.Request().Context(), token)
		if err != nil {
			userID = ""
		}

		c.Set("uid", userID)
		return next(c)
	}
}
