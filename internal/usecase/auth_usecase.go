package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"filedock/internal/domain/repository"
	"filedock/internal/domain/service"
	"filedock/pkg/errors"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	sessions   service.SessionStore
	sessionTTL time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, sessions service.SessionStore, sessionTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// HashPassword is the fixed one-way digest stored and compared for
// credentials. SHA-1 hex is the wire contract of the users collection.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks the credential pair and mints a new session token.
// Unknown email and wrong password are indistinguishable.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	user, err := uc.userRepo.GetByEmailAndHash(ctx, email, HashPassword(password))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return "", errors.Unauthorized("Unauthorized", nil)
		}
		return "", err
	}

	token, err := uc.sessions.Create(ctx, user.ID, uc.sessionTTL)
	if err != nil {
		return "", errors.Internal("Failed to create session", err)
	}

	return token, nil
}

// Authenticate resolves a session token to a user id. Absent and expired
// tokens fail identically.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	userID, err := uc.sessions.Resolve(ctx, token)
	if err != nil {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	return userID, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Revoke(ctx, token)
}
