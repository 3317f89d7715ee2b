package ports

import (
	"context"
	"time"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// SessionToken is the signed credential handed back to the client after a
// successful register or login. The transport layer stores it in an HTTP-only
// cookie; the middleware verifies it and checks the server-side session store.
type SessionToken struct {
	Value     string
	SessionID string
	ExpiresAt time.Time
}

// AuthService implements registration, login and logout.
type AuthService interface {
	// Register creates an account for the lowercase-normalized username and
	// opens a session. Fails with domain.ErrUserExists on duplicates.
	Register(ctx context.Context, username, password string) (*domain.User, *SessionToken, error)
	// Login verifies credentials and opens a session. Unknown users and wrong
	// passwords both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, *SessionToken, error)
	// Logout revokes the session with the given id. Revoking an absent
	// session is a no-op.
	Logout(ctx context.Context, sessionID string) error
}
