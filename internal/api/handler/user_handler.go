package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sylee999/minifeed/internal/api/middleware"
	"github.com/sylee999/minifeed/internal/core/ports"
)

// UserHandler handles profiles and the follow relation.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio" validate:"max=500"`
}

// Get handles GET /v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile handles PUT /v1/users/me.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := h.userService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID: currentUserID(c),
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
	})
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteAccount handles DELETE /v1/users/me and ends the session.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	result := h.userService.DeleteAccount(c.Request().Context(), currentUserID(c))
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, result)
}

// Follow handles POST /v1/users/:id/follow.
func (h *UserHandler) Follow(c echo.Context) error {
	result := h.userService.Follow(c.Request().Context(), c.Param("id"), currentUserID(c))
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

// Unfollow handles DELETE /v1/users/:id/follow.
func (h *UserHandler) Unfollow(c echo.Context) error {
	result := h.userService.Unfollow(c.Request().Context(), c.Param("id"), currentUserID(c))
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}
