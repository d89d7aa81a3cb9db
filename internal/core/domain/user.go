package domain

import "time"

// User models an account in the remote store's /users collection.
//
// This is a demo system: the password is stored and compared in plaintext
// against the store, which is why it is still excluded from JSON responses.
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"-"`
	Bio      string `json:"bio,omitempty"`
	// Following lists the ids of users this user follows.
	Following []string `json:"following"`
	// BookmarkedPosts lists the ids of posts this user bookmarked. The
	// relation is mirrored in Post.BookmarkedBy; the store offers no
	// cross-resource transaction, so the mirror is only eventually
	// consistent (see the bookmark service).
	BookmarkedPosts []string  `json:"bookmarkedPosts"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Follows reports whether the user follows the given user id.
func (u *User) Follows(id string) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}
