package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubSessionStore struct {
	tokens map[string]string // token -> user id
	nextID int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{tokens: make(map[string]string)}
}

func (s *stubSessionStore) Issue(_ context.Context, userID string) (string, error) {
	s.nextID++
	token := fmt.Sprintf("token-%d", s.nextID)
	s.tokens[token] = userID
	return token, nil
}

func (s *stubSessionStore) Resolve(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, token string) error {
	if _, ok := s.tokens[token]; !ok {
		return domain.ErrUnauthenticated
	}
	delete(s.tokens, token)
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *stubUserRepo, *stubSessionStore) {
	t.Helper()
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	return NewAuthService(repo, sessions, zerolog.Nop()), repo, sessions
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected created user to have an id")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newAuthService(t)

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Alice Clone", "alice@example.com", "secret2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user persisted, got %d", len(repo.users))
	}
}

func TestAuthService_Login_IssuesUsableToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	created, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}

	resolved, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resolved.ID != created.ID {
		t.Fatalf("token resolved to user %s, expected %s", resolved.ID, created.ID)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc, _, _ := newAuthService(t)

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, errWrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, _, errUnknownEmail := svc.Login(context.Background(), "ghost@example.com", "secret1")

	if errWrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "secret1"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}

	// Revoking the same token twice fails rather than silently succeeding.
	if err := svc.Logout(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated on second logout, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	if _, err := svc.Authenticate(context.Background(), "never-issued"); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
