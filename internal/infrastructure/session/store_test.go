package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filedock/internal/domain/service"
)

func TestCreateAndResolve(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestResolveUnknownToken(t *testing.T) {
	store := NewStore()

	_, err := store.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, service.ErrNoSession)
}

func TestResolveExpiredToken(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1", -time.Second)
	require.NoError(t, err)

	// An expired token must behave exactly like one that never existed.
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrNoSession)
}

func TestRevoke(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrNoSession)

	// Revoking again (or a token that never existed) still succeeds.
	assert.NoError(t, store.Revoke(ctx, token))
	assert.NoError(t, store.Revoke(ctx, "no-such-token"))
}

func TestCleanupSweepsExpired(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	expired, err := store.Create(ctx, "user-1", -time.Second)
	require.NoError(t, err)
	live, err := store.Create(ctx, "user-2", time.Minute)
	require.NoError(t, err)

	store.Cleanup()

	_, err = store.Resolve(ctx, expired)
	assert.ErrorIs(t, err, service.ErrNoSession)

	userID, err := store.Resolve(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, "user-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
