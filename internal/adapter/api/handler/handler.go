package handler

import (
	"filedock/internal/usecase"
)

var (
	authHandler   *AuthHandler
	userHandler   *UserHandler
	fileHandler   *FileHandler
	healthHandler *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	fileUseCase *usecase.FileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	fileHandler = NewFileHandler(fileUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
