package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sylee999/minifeed/internal/core/ports"
)

// FeedHandler serves the composed home and popular feeds.
type FeedHandler struct {
	feedService ports.FeedService
}

func NewFeedHandler(feedService ports.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Home handles GET /v1/feed: the followed feed for authenticated users, the
// popular feed for anonymous ones.
func (h *FeedHandler) Home(c echo.Context) error {
	feed, err := h.feedService.Home(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}

// Popular handles GET /v1/feed/popular. Accepts an optional limit query
// parameter; invalid or missing values fall back to the default.
func (h *FeedHandler) Popular(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	feed := h.feedService.Popular(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, feed)
}
