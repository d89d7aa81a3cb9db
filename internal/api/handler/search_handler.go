package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sylee999/minifeed/internal/core/ports"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchHandler serves field-scoped search over posts and users.
type SearchHandler struct {
	searchService ports.SearchService
}

func NewSearchHandler(searchService ports.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Posts handles GET /v1/search/posts?q=...&page=...&limit=...
func (h *SearchHandler) Posts(c echo.Context) error {
	query, page, limit := searchParams(c)
	posts, err := h.searchService.SearchPosts(c.Request().Context(), query, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"posts": posts})
}

// Users handles GET /v1/search/users?q=...&page=...&limit=...
func (h *SearchHandler) Users(c echo.Context) error {
	query, page, limit := searchParams(c)
	users, err := h.searchService.SearchUsers(c.Request().Context(), query, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users})
}

func searchParams(c echo.Context) (query string, page, limit int) {
	query = c.QueryParam("q")
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return query, page, limit
}
