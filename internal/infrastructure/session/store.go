package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"filedock/internal/domain/service"
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// Store is an in-memory token store with per-token expiry. Expired entries
// are dropped lazily on Resolve and swept by the cleanup routine.
type Store struct {
	sessions map[string]entry
	mutex    sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entry),
	}
}

var _ service.SessionStore = (*Store)(nil)

func (s *Store) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.New().String()

	s.mutex.Lock()
	s.sessions[token] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	s.mutex.Unlock()

	return token, nil
}

func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	s.mutex.RLock()
	e, ok := s.sessions[token]
	s.mutex.RUnlock()

	if !ok {
		return "", service.ErrNoSession
	}

	if time.Now().After(e.expiresAt) {
		s.mutex.Lock()
		delete(s.sessions, token)
		s.mutex.Unlock()
		return "", service.ErrNoSession
	}

	return e.userID, nil
}

func (s *Store) Revoke(ctx context.Context, token string) error {
	s.mutex.Lock()
	delete(s.sessions, token)
	s.mutex.Unlock()
	return nil
}

// Cleanup removes every expired session.
func (s *Store) Cleanup() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

// StartCleanupRoutine sweeps expired sessions until ctx is cancelled.
func (s *Store) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
