package ports

import (
	"context"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// AuthService authenticates users against the remote store and issues
// session tokens. Passwords are compared in plaintext: this is a demo
// application, not a security model.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token
	// together with the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the session's user id to a full user record.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
