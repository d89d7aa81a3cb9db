package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sylee999/minifeed/internal/api/metrics"
	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

type searchService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewSearchService returns a SearchService implementation.
func NewSearchService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) ports.SearchService {
	return &searchService{posts: posts, users: users, log: log}
}

// SearchPosts runs title and content queries in parallel and merges by id.
// Title matches keep their position; a post matching both fields appears
// exactly once.
func (s *searchService) SearchPosts(ctx context.Context, query string, page, limit int) ([]domain.Post, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Post{}, nil
	}
	metrics.SearchQueriesTotal.WithLabelValues("posts").Inc()

	var byTitle, byContent []domain.Post
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byTitle, err = s.posts.Search(gctx, "title", query, page, limit)
		return err
	})
	g.Go(func() error {
		var err error
		byContent, err = s.posts.Search(gctx, "content", query, page, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("post search failed")
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	merged := make([]domain.Post, 0, len(byTitle)+len(byContent))
	seen := make(map[string]struct{}, len(byTitle)+len(byContent))
	for _, p := range append(byTitle, byContent...) {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	return merged, nil
}

// SearchUsers runs name and bio queries in parallel and merges by id.
func (s *searchService) SearchUsers(ctx context.Context, query string, page, limit int) ([]domain.User, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.User{}, nil
	}
	metrics.SearchQueriesTotal.WithLabelValues("users").Inc()

	var byName, byBio []domain.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byName, err = s.users.Search(gctx, "name", query, page, limit)
		return err
	})
	g.Go(func() error {
		var err error
		byBio, err = s.users.Search(gctx, "bio", query, page, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("user search failed")
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	merged := make([]domain.User, 0, len(byName)+len(byBio))
	seen := make(map[string]struct{}, len(byName)+len(byBio))
	for _, u := range append(byName, byBio...) {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		merged = append(merged, u)
	}
	return merged, nil
}
