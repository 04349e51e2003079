package usecase

import (
	"context"
	"time"

	"filedock/internal/domain/entity"
	"filedock/internal/domain/repository"
	"filedock/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" {
		return nil, errors.BadRequest("Missing email", nil)
	}
	if password == "" {
		return nil, errors.BadRequest("Missing password", nil)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Already exist", nil)
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: HashPassword(password),
		CreatedAt:    time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetMe(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Unauthorized("Unauthorized", err)
	}
	return user, nil
}
