package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// SessionStore is the server-side session registry backed by Redis.
// Key format: session:<sid> → username, expiring with the session TTL so
// abandoned sessions age out without a logout.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put registers a session id for username. A zero ttl keeps Redis' default
// of no expiry, which callers should avoid.
func (s *SessionStore) Put(ctx context.Context, sessionID, username string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), username, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Get returns the username bound to the session. A missing or expired session
// yields domain.ErrUnauthenticated.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	username, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrUnauthenticated
		}
		return "", fmt.Errorf("session get: %w", err)
	}
	return username, nil
}

// Revoke deletes the session. Deleting an absent key is a no-op, which makes
// logout idempotent.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
