package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// CreatePostInput carries the data for a new post.
type CreatePostInput struct {
	UserID  string
	Title   string
	Content string
}

// UpdatePostInput carries an edit to an existing post. UserID identifies the
// caller; only the owner may update.
type UpdatePostInput struct {
	ID      string
	UserID  string
	Title   string
	Content string
}

// PostMutationResult reports the outcome of a post mutation.
type PostMutationResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Post    *domain.Post `json:"post,omitempty"`
}

// PostService implements post CRUD orchestration over the remote store.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) PostMutationResult
	Update(ctx context.Context, input UpdatePostInput) PostMutationResult
	Delete(ctx context.Context, postID, userID string) PostMutationResult
	// Get returns the post and its author. The author is nil when the owning
	// user record cannot be resolved.
	Get(ctx context.Context, id string) (*domain.Post, *domain.User, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Post, error)
}
