package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/taskboard/internal/api/metrics"
	custommw "github.com/taskforge/taskboard/internal/api/middleware"
	"github.com/taskforge/taskboard/internal/core/domain"
	"github.com/taskforge/taskboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type userResponse struct {
	Username string `json:"username"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new account and opens a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, userResponse{Username: user.Username})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, userResponse{Username: user.Username})
}

// Logout revokes the active session and clears the cookie. Logging out
// without a session succeeds too.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, _ := c.Get("sid").(string)
	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}

	clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "you have been logged out"})
}

// Profile returns the authenticated user's profile.
//
// @Summary      Show the session user's profile
// @Tags         auth
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Router       /profile/{username} [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	// The profile shown is always the session user's, matching the original
	// behavior where the path segment is cosmetic.
	username, _ := c.Get("username").(string)
	if username == "" {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, userResponse{Username: username})
}

func setSessionCookie(c echo.Context, token *ports.SessionToken) {
	c.SetCookie(&http.Cookie{
		Name:     custommw.SessionCookie,
		Value:    token.Value,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     custommw.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
