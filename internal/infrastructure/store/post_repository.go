package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// PostRepository implements ports.PostRepository over the remote store's
// /posts collection.
type PostRepository struct {
	client *Client
}

func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

func (r *PostRepository) GetAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.client.Get(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return normalizePosts(posts), nil
}

// GetByID returns (nil, nil) when the store reports 404: a missing single
// entity is a semantic "absent", not a transport error.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := r.client.Get(ctx, "/posts/"+url.PathEscape(id), &post)
	if err != nil {
		if domain.APIStatus(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	normalizePost(&post)
	return &post, nil
}

// GetByUser returns the owner's posts. A 404 on the owner-scoped collection
// means "no posts yet" and yields an empty slice.
func (r *PostRepository) GetByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.client.Get(ctx, "/users/"+url.PathEscape(userID)+"/posts", &posts)
	if err != nil {
		if domain.APIStatus(err) == http.StatusNotFound {
			return []domain.Post{}, nil
		}
		return nil, err
	}
	return normalizePosts(posts), nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	var created domain.Post
	if err := r.client.Post(ctx, "/posts", post, &created); err != nil {
		return nil, err
	}
	normalizePost(&created)
	return &created, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	return r.client.Put(ctx, "/posts/"+url.PathEscape(post.ID), post, nil)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/posts/"+url.PathEscape(id))
}

// Search runs a single field-scoped query using the store's query-parameter
// filtering, e.g. GET /posts?title=hello&page=1&limit=20.
func (r *PostRepository) Search(ctx context.Context, field, query string, page, limit int) ([]domain.Post, error) {
	path := fmt.Sprintf("/posts?%s=%s&page=%d&limit=%d", url.QueryEscape(field), url.QueryEscape(query), page, limit)
	var posts []domain.Post
	if err := r.client.Get(ctx, path, &posts); err != nil {
		return nil, err
	}
	return normalizePosts(posts), nil
}

func normalizePost(p *domain.Post) {
	if p.BookmarkedBy == nil {
		p.BookmarkedBy = []string{}
	}
}

func normalizePosts(posts []domain.Post) []domain.Post {
	if posts == nil {
		return []domain.Post{}
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts
}
