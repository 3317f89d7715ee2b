package middleware

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "taskboard_session"

// SessionReader is the read side of the server-side session store.
type SessionReader interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

// Session verifies the session cookie and injects the authenticated identity
// into the request context. A request without a valid, live session simply
// stays anonymous; enforcement is RequireSession's job, so public routes can
// share this middleware.
//
// A session is live when the cookie JWT verifies against the signing secret
// AND its sid still exists in the server-side store. Logout revokes the sid,
// which invalidates the cookie before its exp claim is reached.
func Session(sessionSecret string, sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(sessionSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return next(c)
			}

			username, err := sessions.Get(c.Request().Context(), sid)
			if err != nil {
				return next(c)
			}

			c.Set("username", username)
			c.Set("sid", sid)
			return next(c)
		}
	}
}

// RequireSession guards a route: requests without an authenticated session
// fail with domain.ErrUnauthenticated (rendered as 401 by the error handler).
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if username, _ := c.Get("username").(string); username == "" {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}
