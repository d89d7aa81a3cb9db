package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// SignupInput carries the data for a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
	Bio      string
}

// UpdateProfileInput carries a self-service profile edit.
type UpdateProfileInput struct {
	UserID string
	Name   string
	Avatar string
	Bio    string
}

// UserMutationResult reports the outcome of a user mutation.
type UserMutationResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// UserService implements account management and the follow relation.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) UserMutationResult
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) UserMutationResult
	DeleteAccount(ctx context.Context, userID string) UserMutationResult
	// Follow adds targetID to the caller's following list. Following only
	// mutates the caller's record; there is no mirrored followers list.
	Follow(ctx context.Context, targetID, userID string) UserMutationResult
	Unfollow(ctx context.Context, targetID, userID string) UserMutationResult
}
