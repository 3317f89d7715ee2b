package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/taskboard/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = user.Username
	r.users[clone.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Put(_ context.Context, sessionID, username string, _ time.Duration) error {
	s.sessions[sessionID] = username
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (string, error) {
	username, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return username, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestAuthService(repo *stubUserRepo, store *stubSessionStore) *AuthService {
	return NewAuthService(repo, store, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	svc := newTestAuthService(repo, store)

	user, token, err := svc.Register(context.Background(), "Bob", "pw")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("expected normalized username bob, got %q", user.Username)
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if token == nil || token.Value == "" {
		t.Fatalf("expected a session token")
	}
	if got, err := store.Get(context.Background(), token.SessionID); err != nil || got != "bob" {
		t.Fatalf("expected session bound to bob, got %q (%v)", got, err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "bob" {
		t.Fatalf("expected username claim bob, got %v", claims["username"])
	}
	if claims["sid"] != token.SessionID {
		t.Fatalf("expected sid claim %s, got %v", token.SessionID, claims["sid"])
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// case-insensitive: ALICE normalizes to alice
	if _, _, err := svc.Register(context.Background(), "ALICE", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one user record, got %d", len(repo.users))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "carol", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestAuthService(newStubUserRepo(), store)

	if _, _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "Carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if got, err := store.Get(context.Background(), token.SessionID); err != nil || got != "carol" {
		t.Fatalf("expected session bound to carol, got %q (%v)", got, err)
	}
}

func TestAuthService_Login_EnumerationSafety(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), "alice", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown user must be indistinguishable.
	_, _, wrongPass := svc.Login(context.Background(), "alice", "wrong")
	_, _, unknownUser := svc.Login(context.Background(), "nosuchuser", "x")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
}

func TestAuthService_Logout(t *testing.T) {
	store := newStubSessionStore()
	svc := newTestAuthService(newStubUserRepo(), store)

	_, token, err := svc.Register(context.Background(), "dave", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token.SessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := store.Get(context.Background(), token.SessionID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected revoked session, got %v", err)
	}

	// logging out again is a no-op
	if err := svc.Logout(context.Background(), token.SessionID); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without a session should be a no-op, got %v", err)
	}
}
