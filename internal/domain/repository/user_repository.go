package repository

import (
	"context"

	"filedock/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndHash(ctx context.Context, email, passwordHash string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
