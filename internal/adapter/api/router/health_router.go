package router

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/status", healthHandler.Status)
	e.GET("/stats", healthHandler.Stats)
}
