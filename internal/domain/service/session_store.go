package service

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned by Resolve for absent and expired tokens alike,
// so callers cannot distinguish expiry from a token that was never issued.
var ErrNoSession = errors.New("no session")

type SessionStore interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke is idempotent; revoking an unknown token succeeds.
	Revoke(ctx context.Context, token string) error
}
