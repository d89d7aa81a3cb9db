package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sylee999/minifeed/internal/api/middleware"
	"github.com/sylee999/minifeed/internal/core/ports"
)

// AuthHandler handles signup, login, logout and session introspection.
type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, sessionTTL: sessionTTL}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup creates an account and logs the new user in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := h.userService.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	})
	if !result.Success {
		status := http.StatusBadRequest
		if result.Message == "Email is already registered" {
			status = http.StatusConflict
		}
		return c.JSON(status, result)
	}

	// Fresh accounts go straight to a session; a separate login round-trip
	// would only re-check the credentials we just stored.
	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err == nil {
		h.setSessionCookie(c, token)
	}

	return c.JSON(http.StatusCreated, result)
}

// Login authenticates and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// Logout clears the session cookie. Sessions are stateless tokens, so there
// is nothing server-side to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authService.CurrentUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
