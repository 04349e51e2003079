package router

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/adapter/api/handler"
	"filedock/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.GET("/connect", authHandler.Connect)
	e.GET("/disconnect", authHandler.Disconnect, authMiddleware.Authenticate)
}
