package router

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/adapter/api/handler"
	"filedock/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	e.POST("/users", userHandler.Register)
	e.GET("/users/me", userHandler.GetMe, authMiddleware.Authenticate)
}
