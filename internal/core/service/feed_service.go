package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sylee999/minifeed/internal/api/metrics"
	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

const defaultFeedLimit = 20

// FeedCache abstracts the popular-feed cache (Redis). A nil cache disables
// caching; cache failures are logged and never affect the feed.
type FeedCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type feedService struct {
	posts ports.PostRepository
	users ports.UserRepository
	cache FeedCache
	log   zerolog.Logger
}

// NewFeedService returns a FeedService implementation. cache may be nil.
func NewFeedService(posts ports.PostRepository, users ports.UserRepository, cache FeedCache, log zerolog.Logger) ports.FeedService {
	return &feedService{posts: posts, users: users, cache: cache, log: log}
}

// Home selects the personalized feed for an authenticated user and the
// popularity-ranked public feed otherwise.
func (s *feedService) Home(ctx context.Context, userID string) (ports.Feed, error) {
	if userID == "" {
		return s.Popular(ctx, defaultFeedLimit), nil
	}
	return s.Followed(ctx, userID)
}

// Popular assembles the public landing feed. Availability beats correctness
// here: any failure degrades to an empty feed and is only logged.
func (s *feedService) Popular(ctx context.Context, limit int) ports.Feed {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	key := fmt.Sprintf("feed:popular:%d", limit)

	if s.cache != nil {
		var cached ports.Feed
		found, err := s.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("popular feed cache lookup failed")
		case found:
			metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
			return cached
		default:
			metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	posts, err := s.posts.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("popular feed: failed to fetch posts")
		metrics.FeedsComposedTotal.WithLabelValues("popular", "degraded").Inc()
		return emptyFeed()
	}

	// Bookmark count descending, ties broken by creation time (newest
	// first). The sort is stable so equal-count equal-time posts keep a
	// deterministic order across calls.
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].BookmarkCount() != posts[j].BookmarkCount() {
			return posts[i].BookmarkCount() > posts[j].BookmarkCount()
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}

	feed := ports.Feed{
		Posts:   posts,
		Authors: s.resolveAuthors(ctx, distinctAuthorIDs(posts)),
	}
	metrics.FeedsComposedTotal.WithLabelValues("popular", "ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, feed); err != nil {
			s.log.Warn().Err(err).Msg("popular feed cache store failed")
		}
	}
	return feed
}

// Followed assembles the personalized feed from the current user's social
// graph. Per-followed-user failures are tolerated; a failure to resolve the
// current user is surfaced; authentication errors always propagate.
func (s *feedService) Followed(ctx context.Context, userID string) (ports.Feed, error) {
	if userID == "" {
		// Callers route anonymous users to Popular, but this path must
		// still be safe.
		return emptyFeed(), nil
	}

	me, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return emptyFeed(), err
	}
	if me == nil {
		return emptyFeed(), domain.NewNotFoundError("User", userID)
	}
	if len(me.Following) == 0 {
		// New user with no social graph yet: a normal state, not an error.
		return emptyFeed(), nil
	}

	var (
		mu      sync.Mutex
		posts   []domain.Post
		authors []domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, followedID := range me.Following {
		followedID := followedID
		g.Go(func() error {
			userPosts, err := s.posts.GetByUser(gctx, followedID)
			if err != nil {
				if domain.IsKind(err, domain.KindAuthentication) {
					return err
				}
				s.log.Warn().Err(err).Str("user_id", followedID).Msg("followed feed: failed to fetch posts")
				return nil
			}
			mu.Lock()
			posts = append(posts, userPosts...)
			mu.Unlock()
			return nil
		})
		g.Go(func() error {
			profile, err := s.users.GetByID(gctx, followedID)
			if err != nil {
				if domain.IsKind(err, domain.KindAuthentication) {
					return err
				}
				s.log.Warn().Err(err).Str("user_id", followedID).Msg("followed feed: failed to fetch profile")
				return nil
			}
			if profile == nil {
				s.log.Warn().Str("user_id", followedID).Msg("followed feed: followed user no longer exists")
				return nil
			}
			mu.Lock()
			authors = append(authors, *profile)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if domain.IsKind(err, domain.KindAuthentication) {
			return emptyFeed(), err
		}
		s.log.Error().Err(err).Str("user_id", userID).Msg("followed feed: composition failed")
		metrics.FeedsComposedTotal.WithLabelValues("followed", "degraded").Inc()
		return emptyFeed(), nil
	}

	// No popularity ranking in this view: newest first only. Completion
	// order of the fetches above is unspecified, so the ordering is imposed
	// here.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	metrics.FeedsComposedTotal.WithLabelValues("followed", "ok").Inc()
	if posts == nil {
		posts = []domain.Post{}
	}
	if authors == nil {
		authors = []domain.User{}
	}
	return ports.Feed{Posts: posts, Authors: authors}, nil
}

// resolveAuthors fetches each distinct author in parallel. A failed lookup
// omits that author: posts render with an unknown-author fallback downstream
// rather than failing the whole feed.
func (s *feedService) resolveAuthors(ctx context.Context, ids []string) []domain.User {
	var (
		mu      sync.Mutex
		authors = make([]domain.User, 0, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			author, err := s.users.GetByID(gctx, id)
			if err != nil {
				s.log.Warn().Err(err).Str("user_id", id).Msg("feed: failed to resolve author")
				return nil
			}
			if author == nil {
				s.log.Warn().Str("user_id", id).Msg("feed: author no longer exists")
				return nil
			}
			mu.Lock()
			authors = append(authors, *author)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return authors
}

func distinctAuthorIDs(posts []domain.Post) []string {
	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}
	return ids
}

func emptyFeed() ports.Feed {
	return ports.Feed{Posts: []domain.Post{}, Authors: []domain.User{}}
}
