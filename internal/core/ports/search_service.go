package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// SearchService runs field-scoped substring queries against the store and
// merges the results by id. A blank query short-circuits to an empty result
// without touching the network.
type SearchService interface {
	// SearchPosts matches the query against title and content.
	SearchPosts(ctx context.Context, query string, page, limit int) ([]domain.Post, error)
	// SearchUsers matches the query against name and bio.
	SearchUsers(ctx context.Context, query string, page, limit int) ([]domain.User, error)
}
