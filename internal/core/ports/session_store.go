package ports

import "context"

// SessionStore persists opaque bearer tokens. A token stays valid until
// explicitly revoked; revocation is atomic relative to concurrent resolution.
type SessionStore interface {
	// Issue generates a new token bound to userID. The plaintext token is
	// returned exactly once and cannot be retrieved again.
	Issue(ctx context.Context, userID string) (string, error)
	// Resolve returns the owning user id, or domain.ErrUnauthenticated for an
	// unknown or revoked token.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke deletes the token. Revoking an unknown or already-revoked token
	// reports domain.ErrUnauthenticated.
	Revoke(ctx context.Context, token string) error
}
