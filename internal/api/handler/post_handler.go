package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sylee999/minifeed/internal/core/ports"
)

// PostHandler handles post CRUD and bookmark toggling.
type PostHandler struct {
	postService     ports.PostService
	bookmarkService ports.BookmarkService
}

func NewPostHandler(postService ports.PostService, bookmarkService ports.BookmarkService) *PostHandler {
	return &PostHandler{postService: postService, bookmarkService: bookmarkService}
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// Get handles GET /v1/posts/:id. The author may be null when the owning
// user record could not be resolved.
func (h *PostHandler) Get(c echo.Context) error {
	post, author, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"post": post, "author": author})
}

// ListByUser handles GET /v1/users/:id/posts.
func (h *PostHandler) ListByUser(c echo.Context) error {
	posts, err := h.postService.ListByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"posts": posts})
}

// Create handles POST /v1/posts.
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := h.postService.Create(c.Request().Context(), ports.CreatePostInput{
		UserID:  currentUserID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusCreated, result)
}

// Update handles PUT /v1/posts/:id.
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := h.postService.Update(c.Request().Context(), ports.UpdatePostInput{
		ID:      c.Param("id"),
		UserID:  currentUserID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /v1/posts/:id.
func (h *PostHandler) Delete(c echo.Context) error {
	result := h.postService.Delete(c.Request().Context(), c.Param("id"), currentUserID(c))
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleBookmark handles POST /v1/posts/:id/bookmark. The outcome is always
// a result object so the UI can render the message without an error path.
func (h *PostHandler) ToggleBookmark(c echo.Context) error {
	result := h.bookmarkService.Toggle(c.Request().Context(), c.Param("id"), currentUserID(c))
	if !result.Success {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}
