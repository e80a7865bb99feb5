package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const tokenBytes = 32

// SessionStore keeps opaque bearer tokens in Redis.
// Key format: session:<token>, a hash holding user_id and created_at.
// Keys carry no TTL: a token stays valid until revoked. Redis executes each
// key operation atomically, so a request racing a logout observes the token
// as either fully valid or fully revoked.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Issue generates a cryptographically random token bound to userID and
// persists the association. The plaintext token is returned exactly once.
func (s *SessionStore) Issue(ctx context.Context, userID string) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(b)

	err := s.client.HSet(ctx, s.key(token),
		"user_id", userID,
		"created_at", time.Now().UTC().Format(time.RFC3339),
	).Err()
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id the token was issued to. An unknown or revoked
// token yields domain.ErrUnauthenticated.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.HGet(ctx, s.key(token), "user_id").Result()
	if err == redis.Nil {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Revoke deletes the token. Deletion is permanent: the same token never
// validates again. Revoking a token that does not exist reports
// domain.ErrUnauthenticated.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	n, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if n == 0 {
		return domain.ErrUnauthenticated
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
