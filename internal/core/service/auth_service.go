package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/taskboard/internal/core/domain"
	"github.com/taskforge/taskboard/internal/core/ports"
)

// SessionStore abstracts the server-side session registry (Redis).
type SessionStore interface {
	Put(ctx context.Context, sessionID, username string, ttl time.Duration) error
	// Get returns the username bound to the session, or
	// domain.ErrUnauthenticated when the session does not exist.
	Get(ctx context.Context, sessionID string) (string, error)
	// Revoke removes the session. Revoking an absent session is a no-op.
	Revoke(ctx context.Context, sessionID string) error
}

// AuthService implements registration, login and logout. Sessions are a pair:
// a server-side entry in the SessionStore plus a signed HS256 token the
// transport layer places in a cookie.
type AuthService struct {
	repo          ports.UserRepository
	sessions      SessionStore
	sessionSecret string
	sessionTTL    time.Duration
	log           zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions SessionStore, sessionSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:          repo,
		sessions:      sessions,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		log:           log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, *ports.SessionToken, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, nil, err
	}

	token, err := s.openSession(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *ports.SessionToken, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// An unknown user yields the same error as a wrong password so the
		// login endpoint cannot be used to enumerate usernames.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", username).Msg("user logged in")
	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sessionID)
}

// openSession registers a new session id server-side and signs the cookie token.
func (s *AuthService) openSession(ctx context.Context, username string) (*ports.SessionToken, error) {
	sid := newSessionID()
	if err := s.sessions.Put(ctx, sid, username, s.sessionTTL); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	claims := jwt.MapClaims{
		"sid":      sid,
		"username": username,
		"exp":      expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.sessionSecret))
	if err != nil {
		return nil, err
	}

	return &ports.SessionToken{
		Value:     signed,
		SessionID: sid,
		ExpiresAt: expiresAt,
	}, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
