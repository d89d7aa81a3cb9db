package domain

import "time"

// Post is a user-authored entry in the shared feed. Posts live in the remote
// store's /posts collection; the service only ever holds transient copies.
type Post struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// BookmarkedBy lists the ids of users that bookmarked this post.
	// The store may omit the field entirely; repositories normalize it to an
	// empty slice. Invariant: a user id appears at most once.
	BookmarkedBy []string  `json:"bookmarkedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Edited reports whether the post was modified after creation.
func (p *Post) Edited() bool {
	return !p.UpdatedAt.Equal(p.CreatedAt)
}

// BookmarkCount returns the number of users that bookmarked the post.
func (p *Post) BookmarkCount() int {
	return len(p.BookmarkedBy)
}
