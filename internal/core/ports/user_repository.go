package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// UserRepository defines read/write operations against the remote store's
// /users collection. Implementations must normalize missing following and
// bookmarkedPosts fields to empty slices on every record returned.
type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	// GetByID returns the user, or (nil, nil) when the store reports 404.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the full user record (PUT).
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, field, query string, page, limit int) ([]domain.User, error)
}
