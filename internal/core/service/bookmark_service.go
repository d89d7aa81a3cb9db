package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/api/metrics"
	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

type bookmarkService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewBookmarkService returns a BookmarkService implementation.
func NewBookmarkService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) ports.BookmarkService {
	return &bookmarkService{posts: posts, users: users, log: log}
}

// Toggle flips the bookmark relation between a user and a post. The relation
// is mirrored in two independently stored records and the store has no
// cross-resource transaction, so the update is two sequential writes:
//
//  1. PUT the post with the updated bookmarkedBy list.
//  2. PUT the user with the updated bookmarkedPosts list.
//
// Write #2 only starts after write #1 resolves. When write #2 fails, exactly
// one compensating write re-PUTs the post with its pre-toggle bookmarkedBy.
// The compensation is best-effort: its own failure is logged and the
// original failure still wins. Concurrent toggles on the same post can lose
// updates (last PUT wins on the whole list); the store offers nothing to
// prevent that and this service does not pretend otherwise.
func (s *bookmarkService) Toggle(ctx context.Context, postID, userID string) ports.ToggleResult {
	if userID == "" {
		metrics.BookmarkTogglesTotal.WithLabelValues("rejected").Inc()
		return ports.ToggleResult{Success: false, Message: "You must be logged in to bookmark posts"}
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		s.log.Error().Err(err).Str("post_id", postID).Msg("bookmark toggle: failed to load post")
		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: "Failed to load post: " + storeFailureText(err)}
	}
	if post == nil {
		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: domain.NewNotFoundError("Post", postID).Message}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("bookmark toggle: failed to load user")
		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: "Failed to load user: " + storeFailureText(err)}
	}
	if user == nil {
		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: domain.NewNotFoundError("User", userID).Message}
	}

	wasBookmarked := containsID(post.BookmarkedBy, userID)
	originalBookmarkedBy := append([]string(nil), post.BookmarkedBy...)

	if wasBookmarked {
		post.BookmarkedBy = removeID(post.BookmarkedBy, userID)
		user.BookmarkedPosts = removeID(user.BookmarkedPosts, postID)
	} else {
		post.BookmarkedBy = addID(post.BookmarkedBy, userID)
		user.BookmarkedPosts = addID(user.BookmarkedPosts, postID)
	}

	// Write #1: the post record. Nothing has been mutated yet, so a failure
	// here needs no rollback.
	if err := s.posts.Update(ctx, post); err != nil {
		s.log.Error().Err(err).Str("post_id", postID).Msg("bookmark toggle: post write failed")
		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: "Failed to update post bookmarks: " + storeFailureText(err)}
	}

	// Write #2: the user record. A failure here leaves the two records
	// inconsistent; compensate by reverting the post.
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error().Err(err).
			Str("post_id", postID).
			Str("user_id", userID).
			Msg("bookmark toggle: user write failed, compensating post write")

		post.BookmarkedBy = originalBookmarkedBy
		if compErr := s.posts.Update(ctx, post); compErr != nil {
			s.log.Error().Err(compErr).
				Str("post_id", postID).
				Msg("bookmark toggle: compensating write failed, records left inconsistent")
			metrics.BookmarkCompensationsTotal.WithLabelValues("failed").Inc()
		} else {
			metrics.BookmarkCompensationsTotal.WithLabelValues("ok").Inc()
		}

		metrics.BookmarkTogglesTotal.WithLabelValues("failed").Inc()
		return ports.ToggleResult{Success: false, Message: "Failed to update user bookmarks: " + storeFailureText(err)}
	}

	if wasBookmarked {
		metrics.BookmarkTogglesTotal.WithLabelValues("removed").Inc()
		return ports.ToggleResult{Success: true, IsBookmarked: false, Message: "Bookmark removed successfully"}
	}
	metrics.BookmarkTogglesTotal.WithLabelValues("bookmarked").Inc()
	return ports.ToggleResult{Success: true, IsBookmarked: true, Message: "Post bookmarked successfully"}
}

// storeFailureText renders a store failure for end users: the status text
// for API errors, never a raw transport error.
func storeFailureText(err error) string {
	var e *domain.Error
	if errors.As(err, &e) && e.Kind == domain.KindAPI && e.Status > 0 {
		if text := http.StatusText(e.Status); text != "" {
			return text
		}
	}
	return "store request failed"
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// addID appends id, keeping the at-most-once invariant even if the stored
// list already contains it.
func addID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
