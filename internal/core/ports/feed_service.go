package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// Feed is an ordered sequence of posts assembled for display, along with the
// distinct author records needed to render them. Authors are consumed by id
// lookup, so their order carries no meaning.
type Feed struct {
	Posts   []domain.Post `json:"posts"`
	Authors []domain.User `json:"authors"`
}

// FeedService assembles the home feed.
type FeedService interface {
	// Popular returns up to limit posts ranked by bookmark count descending,
	// ties broken by creation time (newest first). It backs the anonymous
	// landing view and never fails: on any error it degrades to an empty
	// feed and logs the cause. limit <= 0 selects the default of 20.
	Popular(ctx context.Context, limit int) Feed
	// Followed returns the posts of every user the current user follows,
	// newest first. Per-followed-user fetch failures are tolerated and
	// logged; a failure to resolve the current user is surfaced, and
	// authentication errors always propagate.
	Followed(ctx context.Context, userID string) (Feed, error)
	// Home selects Followed for an authenticated user and Popular otherwise.
	Home(ctx context.Context, userID string) (Feed, error)
}
