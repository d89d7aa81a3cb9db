package ports

import "context"

// ToggleResult is the outcome of a bookmark toggle. Failures are reported
// through the result rather than an error so callers can render the message
// without an exception boundary.
type ToggleResult struct {
	Success bool `json:"success"`
	// IsBookmarked is the post's new state for the caller. Only meaningful
	// when Success is true.
	IsBookmarked bool   `json:"isBookmarked"`
	Message      string `json:"message"`
}

// BookmarkService flips a user's bookmark relation to a post across the two
// independently stored resources that mirror it.
type BookmarkService interface {
	Toggle(ctx context.Context, postID, userID string) ToggleResult
}
