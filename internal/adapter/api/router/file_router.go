package router

import (
	"github.com/labstack/echo/v4"

	"filedock/internal/adapter/api/handler"
	"filedock/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	e.POST("/files", fileHandler.Upload, authMiddleware.Authenticate)
	e.GET("/files", fileHandler.Index, authMiddleware.Authenticate)
	e.GET("/files/:id", fileHandler.Show, authMiddleware.Authenticate)
	e.PUT("/files/:id/publish", fileHandler.Publish, authMiddleware.Authenticate)
	e.PUT("/files/:id/unpublish", fileHandler.Unpublish, authMiddleware.Authenticate)

	// The data route is open: public files are readable without a session,
	// and private ones answer 404 to everyone but the owner.
	e.GET("/files/:id/data", fileHandler.Content, authMiddleware.ResolveUser)
}
