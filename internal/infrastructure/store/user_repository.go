package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// UserRepository implements ports.UserRepository over the remote store's
// /users collection.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// storeUser is the wire representation of a user record. domain.User keeps
// the password out of JSON so it cannot leak through API responses; the
// store record must round-trip it, hence the separate type.
type storeUser struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar,omitempty"`
	Password        string    `json:"password"`
	Bio             string    `json:"bio,omitempty"`
	Following       []string  `json:"following"`
	BookmarkedPosts []string  `json:"bookmarkedPosts"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u storeUser) toDomain() domain.User {
	user := domain.User{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Avatar:          u.Avatar,
		Password:        u.Password,
		Bio:             u.Bio,
		Following:       u.Following,
		BookmarkedPosts: u.BookmarkedPosts,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if user.Following == nil {
		user.Following = []string{}
	}
	if user.BookmarkedPosts == nil {
		user.BookmarkedPosts = []string{}
	}
	return user
}

func fromDomain(user *domain.User) storeUser {
	return storeUser{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Avatar:          user.Avatar,
		Password:        user.Password,
		Bio:             user.Bio,
		Following:       user.Following,
		BookmarkedPosts: user.BookmarkedPosts,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var records []storeUser
	if err := r.client.Get(ctx, "/users", &records); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toDomain())
	}
	return users, nil
}

// GetByID returns (nil, nil) when the store reports 404.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var rec storeUser
	err := r.client.Get(ctx, "/users/"+url.PathEscape(id), &rec)
	if err != nil {
		if domain.APIStatus(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	user := rec.toDomain()
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var rec storeUser
	if err := r.client.Post(ctx, "/users", fromDomain(user), &rec); err != nil {
		return nil, err
	}
	created := rec.toDomain()
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.client.Put(ctx, "/users/"+url.PathEscape(user.ID), fromDomain(user), nil)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/users/"+url.PathEscape(id))
}

func (r *UserRepository) Search(ctx context.Context, field, query string, page, limit int) ([]domain.User, error) {
	path := fmt.Sprintf("/users?%s=%s&page=%d&limit=%d", url.QueryEscape(field), url.QueryEscape(query), page, limit)
	var records []storeUser
	if err := r.client.Get(ctx, path, &records); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toDomain())
	}
	return users, nil
}
