package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

type postService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewPostService returns a PostService implementation.
func NewPostService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) ports.PostService {
	return &postService{posts: posts, users: users, log: log}
}

func (s *postService) Create(ctx context.Context, input ports.CreatePostInput) ports.PostMutationResult {
	if input.UserID == "" {
		return ports.PostMutationResult{Success: false, Message: "You must be logged in to create posts"}
	}

	now := time.Now().UTC()
	post := &domain.Post{
		UserID:       input.UserID,
		Title:        input.Title,
		Content:      input.Content,
		BookmarkedBy: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create post")
		return ports.PostMutationResult{Success: false, Message: "Failed to create post: " + storeFailureText(err)}
	}

	s.log.Info().Str("post_id", created.ID).Str("user_id", input.UserID).Msg("post created")
	return ports.PostMutationResult{Success: true, Message: "Post created successfully", Post: created}
}

func (s *postService) Update(ctx context.Context, input ports.UpdatePostInput) ports.PostMutationResult {
	if input.UserID == "" {
		return ports.PostMutationResult{Success: false, Message: "You must be logged in to update posts"}
	}

	post, err := s.posts.GetByID(ctx, input.ID)
	if err != nil {
		s.log.Error().Err(err).Str("post_id", input.ID).Msg("failed to load post for update")
		return ports.PostMutationResult{Success: false, Message: "Failed to load post: " + storeFailureText(err)}
	}
	if post == nil {
		return ports.PostMutationResult{Success: false, Message: domain.NewNotFoundError("Post", input.ID).Message}
	}
	if post.UserID != input.UserID {
		return ports.PostMutationResult{Success: false, Message: "You can only update your own posts"}
	}

	// bookmarkedBy is owned by the bookmark toggle; an edit must not touch it.
	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		s.log.Error().Err(err).Str("post_id", input.ID).Msg("failed to update post")
		return ports.PostMutationResult{Success: false, Message: "Failed to update post: " + storeFailureText(err)}
	}

	return ports.PostMutationResult{Success: true, Message: "Post updated successfully", Post: post}
}

func (s *postService) Delete(ctx context.Context, postID, userID string) ports.PostMutationResult {
	if userID == "" {
		return ports.PostMutationResult{Success: false, Message: "You must be logged in to delete posts"}
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		s.log.Error().Err(err).Str("post_id", postID).Msg("failed to load post for delete")
		return ports.PostMutationResult{Success: false, Message: "Failed to load post: " + storeFailureText(err)}
	}
	if post == nil {
		return ports.PostMutationResult{Success: false, Message: domain.NewNotFoundError("Post", postID).Message}
	}
	if post.UserID != userID {
		return ports.PostMutationResult{Success: false, Message: "You can only delete your own posts"}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		s.log.Error().Err(err).Str("post_id", postID).Msg("failed to delete post")
		return ports.PostMutationResult{Success: false, Message: "Failed to delete post: " + storeFailureText(err)}
	}

	s.log.Info().Str("post_id", postID).Str("user_id", userID).Msg("post deleted")
	return ports.PostMutationResult{Success: true, Message: "Post deleted successfully"}
}

// Get loads a post together with its author. A missing author is tolerated:
// the post renders with an unknown-author fallback downstream.
func (s *postService) Get(ctx context.Context, id string) (*domain.Post, *domain.User, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, domain.NewNotFoundError("Post", id)
	}

	author, err := s.users.GetByID(ctx, post.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", post.UserID).Msg("failed to resolve post author")
		return post, nil, nil
	}
	return post, author, nil
}

func (s *postService) ListByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	return s.posts.GetByUser(ctx, userID)
}
