package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// PostRepository defines read/write operations against the remote store's
// /posts collection. Implementations must normalize a missing bookmarkedBy
// field to an empty slice on every record returned.
type PostRepository interface {
	// GetAll fetches the full collection.
	GetAll(ctx context.Context) ([]domain.Post, error)
	// GetByID returns the post, or (nil, nil) when the store reports 404.
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// GetByUser returns the owner's posts. A 404 on the owner-scoped
	// collection yields an empty slice, not an error.
	GetByUser(ctx context.Context, userID string) ([]domain.Post, error)
	// Create stores a new post and returns it with the store-assigned id.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// Update replaces the full post record (PUT).
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	// Search runs a single field-scoped substring query, e.g.
	// GET /posts?title=hello&page=1&limit=20.
	Search(ctx context.Context, field, query string, page, limit int) ([]domain.Post, error)
}
